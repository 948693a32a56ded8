package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"ipxact-gen/internal/app"
)

type inspectOptions struct {
	Search []string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the definitions loaded from the search roots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Search, "search", nil, "Metadata search root(s)")
	_ = viper.BindPFlag("search", cmd.Flags().Lookup("search"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		SearchRoots: resolveStrings(cmd, opts.Search, "search", "search"),
	})
	if err != nil {
		return err
	}
	rendered, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Print(string(rendered))
	return nil
}
