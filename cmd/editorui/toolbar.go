package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/editorui/internal/config"
	"github.com/vango-dev/editorui/pkg/render"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

// buildGroups loads the config and groups its toolbar layout.
func buildGroups(cmd *cobra.Command, flags *globalFlags, hide *bool) ([]toolbar.Group, *config.Config, error) {
	cfg, err := loadConfig(cmd.Context(), flags)
	if err != nil {
		return nil, nil, err
	}
	specs, err := cfg.ToolbarSpecs()
	if err != nil {
		return nil, nil, err
	}
	tr, err := cfg.Translator()
	if err != nil {
		return nil, nil, err
	}

	hidden := cfg.HideScrollSync
	if hide != nil && cmd.Flags().Changed("hide-scroll-sync") {
		hidden = *hide
	}
	reg := toolbar.NewRegistry(toolbar.WithTranslator(tr))
	return reg.Group(specs, hidden), cfg, nil
}

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		hide      bool
		pretty    bool
		className string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the toolbar as HTML",
		Long: `Print the configured toolbar as HTML.

Examples:
  editorui render
  editorui render --pretty --hide-scroll-sync
  editorui render --config s3://my-bucket/editor/editorui.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, _, err := buildGroups(cmd, flags, &hide)
			if err != nil {
				return err
			}
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			html, err := r.RenderToString(toolbar.Render(groups, toolbar.RenderOptions{ClassName: className}))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hide, "hide-scroll-sync", false, "Hide the scroll-sync toggle (default from config)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().StringVar(&className, "class", "", "Extra class for the toolbar root")

	return cmd
}

func groupsCmd(flags *globalFlags) *cobra.Command {
	var hide bool

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Print the toolbar groups as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, _, err := buildGroups(cmd, flags, &hide)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(groups)
		},
	}

	cmd.Flags().BoolVar(&hide, "hide-scroll-sync", false, "Hide the scroll-sync toggle (default from config)")

	return cmd
}
