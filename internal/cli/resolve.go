package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nazliander/dbt-core/internal/app"
)

type resolveOptions struct {
	Manifest string
	Kind     string
	Name     string
	Package  string
	Adapter  string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a ref, macro, operation, doc, or materialization by name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "target/manifest.json", "Manifest file path")
	cmd.Flags().StringVar(&opts.Kind, "kind", "ref", "Lookup kind: ref, macro, operation, doc, materialization")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Name to resolve")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Restrict the search to one package")
	cmd.Flags().StringVar(&opts.Adapter, "adapter", "", "Adapter type for materialization lookups")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("kind", cmd.Flags().Lookup("kind"))
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("package", cmd.Flags().Lookup("package"))
	_ = viper.BindPFlag("adapter", cmd.Flags().Lookup("adapter"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Kind:         resolveString(cmd, opts.Kind, "kind", "kind"),
		Name:         resolveString(cmd, opts.Name, "name", "name"),
		Package:      resolveString(cmd, opts.Package, "package", "package"),
		Adapter:      resolveString(cmd, opts.Adapter, "adapter", "adapter"),
	})
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Println("not found")
		return nil
	}
	fmt.Printf("%s (package %s, resource type %s)\n",
		result.UniqueID, result.PackageName, result.ResourceType)
	return nil
}
