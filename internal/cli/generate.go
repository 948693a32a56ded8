package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ipxact-gen/internal/app"
)

type generateOptions struct {
	Design    string
	Search    []string
	OutputDir string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate source units for a design's component instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Design, "design", "", "Top-level design document path")
	cmd.Flags().StringSliceVar(&opts.Search, "search", nil, "Metadata search root(s)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")

	_ = viper.BindPFlag("design", cmd.Flags().Lookup("design"))
	_ = viper.BindPFlag("search", cmd.Flags().Lookup("search"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		DesignPath:  resolveString(cmd, opts.Design, "design", "design"),
		SearchRoots: resolveStrings(cmd, opts.Search, "search", "search"),
		OutputDir:   resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated: %s (%d units)\n", result.DesignName, len(result.Units))
	for _, skipped := range result.Skipped {
		fmt.Printf("skipped: %s (%s)\n", skipped.InstanceName, skipped.Reason)
	}
	return nil
}
