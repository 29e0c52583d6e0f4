package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Torimune29/cppcodegen/emit"
	"github.com/Torimune29/cppcodegen/manifest"
)

func newGenerateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate <manifest>",
		Short: "Render a manifest and write its output file",
		Long: `Generate loads a YAML or TOML manifest, renders it, and writes the result
to the output path the manifest names. Relative output paths resolve against
the manifest's directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			manifestPath := args[0]

			if output != "" {
				doc, err := manifest.Load(manifestPath)
				if err != nil {
					return err
				}
				content, err := doc.Render()
				if err != nil {
					return err
				}
				if output == "-" {
					fmt.Fprint(cmd.OutOrStdout(), content)
					return nil
				}
				if err := emit.WriteFile(output, content); err != nil {
					return err
				}
				logger.Info("generated", "manifest", manifestPath, "output", output)
				return nil
			}

			out, content, err := emit.Generate(manifestPath)
			if err != nil {
				return err
			}
			logger.Info("generated", "manifest", manifestPath, "output", out, "bytes", len(content))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output path, overriding the manifest ("-" for stdout)`)
	return cmd
}
