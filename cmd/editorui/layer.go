package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/layer"
	"github.com/vango-dev/editorui/pkg/render"
	"github.com/vango-dev/editorui/pkg/vdom"
)

func layerCmd(flags *globalFlags) *cobra.Command {
	var (
		x, y   int
		props  []string
		asJSON bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "layer <kind>",
		Short: "Print a popup layer",
		Long: `Print the popup layer opened by a toolbar trigger.

Kinds: heading, link, image, table (or table-insert).

Examples:
  editorui layer link --prop url=https://example.com
  editorui layer table --x 120 --y 30 --prop cols=3 --prop rows=2
  editorui layer image --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}
			tr, err := cfg.Translator()
			if err != nil {
				return err
			}

			d, ok := layer.NewFactory(layer.WithTranslator(tr)).Create(args[0], layer.Payload{Pos: layer.Pos{X: x, Y: y}})
			if !ok {
				return errors.New("E021").
					WithDetail("kind " + args[0]).
					WithSuggestion("Use one of heading, link, image, table")
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}

			p, err := parseProps(props)
			if err != nil {
				return err
			}
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			html, err := r.RenderToString(d.Render(p))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "Horizontal position")
	cmd.Flags().IntVar(&y, "y", 0, "Vertical position")
	cmd.Flags().StringArrayVar(&props, "prop", nil, "Body property as key=value (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the descriptor instead of the body")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")

	return cmd
}

// parseProps turns key=value pairs into body props.
func parseProps(pairs []string) (vdom.Props, error) {
	props := vdom.Props{}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, errors.New("E140").
				WithDetail("--prop " + pair).
				WithExample("--prop url=https://example.com")
		}
		props[k] = v
	}
	return props, nil
}
