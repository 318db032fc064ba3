package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/editorui/internal/config"
	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

func initCmd() *cobra.Command {
	var (
		asYAML   bool
		force    bool
		language string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a config file with the default toolbar layout",
		Long: `Write editorui.json (or editorui.yaml with --yaml) into dir, which
defaults to the current directory. The file spells out the default
toolbar layout so it can be edited in place.

Examples:
  editorui init
  editorui init ./docs --yaml --language ko-KR`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			name := config.JSONFileName
			if asYAML {
				name = config.YAMLFileName
			}
			path := filepath.Join(dir, name)

			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.New("E140").
						WithDetail(path + " already exists").
						WithSuggestion("Pass --force to overwrite it")
				}
			}

			cfg := config.New()
			cfg.ToolbarItems = toolbar.SpecValues(toolbar.DefaultSpecs())
			if language != "" {
				cfg.Language = language
			}
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(cmd, "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write editorui.yaml instead of editorui.json")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&language, "language", "", "Tooltip language, such as ko-KR")

	return cmd
}
