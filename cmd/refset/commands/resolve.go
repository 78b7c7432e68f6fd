package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/refset/internal/app"
	"go.trai.ch/refset/internal/presets"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [preset]",
		Short: "Resolve a target framework to its reference assembly paths",
		Long: "Resolve a preset (" + strings.Join(presets.Names(), ", ") + ") or an " +
			"ad-hoc descriptor built from --framework and --package flags.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !cmd.Flags().Changed("framework") {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			preset := ""
			if len(args) == 1 {
				preset = args[0]
			}
			framework, _ := cmd.Flags().GetString("framework")
			packages, _ := cmd.Flags().GetStringArray("package")
			language, _ := cmd.Flags().GetString("language")
			jsonOut, _ := cmd.Flags().GetBool("json")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Preset:     preset,
				Framework:  framework,
				Packages:   packages,
				Language:   language,
				JSON:       jsonOut,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("framework", "f", "", "Target framework moniker for an ad-hoc descriptor")
	cmd.Flags().StringArrayP("package", "p", nil, "Extra package reference (id@version), repeatable")
	cmd.Flags().StringP("language", "l", "", "Source language: csharp or vb")
	cmd.Flags().Bool("json", false, "Emit the reference set as JSON")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, styled, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}
