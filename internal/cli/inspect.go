package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nazliander/dbt-core/internal/app"
)

type inspectOptions struct {
	Manifest string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect manifest contents and dependency edges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "target/manifest.json", "Manifest file path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("nodes: %d, macros: %d, docs: %d, edges: %d\n",
		result.NodeCount, result.MacroCount, result.DocCount, result.EdgeCount)
	if len(result.Roots) > 0 {
		fmt.Printf("roots: %s\n", strings.Join(result.Roots, ", "))
	}
	if len(result.Leaves) > 0 {
		fmt.Printf("leaves: %s\n", strings.Join(result.Leaves, ", "))
	}
	return nil
}
