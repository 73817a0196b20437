package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nazliander/dbt-core/internal/app"
)

type buildOptions struct {
	Artifacts []string
	Patches   []string
	Output    string
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the manifest from parsed artifacts and schema patches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Artifacts, "artifacts", nil, "Parsed artifact file paths")
	cmd.Flags().StringSliceVar(&opts.Patches, "patch", nil, "Schema patch file paths")
	cmd.Flags().StringVar(&opts.Output, "output", "target/manifest.json", "Manifest output path")
	_ = viper.BindPFlag("artifacts", cmd.Flags().Lookup("artifacts"))
	_ = viper.BindPFlag("patches", cmd.Flags().Lookup("patch"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		ArtifactPaths: resolveStrings(cmd, opts.Artifacts, "artifacts", "artifacts"),
		PatchPaths:    resolveStrings(cmd, opts.Patches, "patches", "patch"),
		Output:        resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("manifest written: %s (%d nodes, %d macros, %d docs)\n",
		result.OutputPath, result.NodeCount, result.MacroCount, result.DocCount)
	return nil
}
