package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Torimune29/cppcodegen/emit"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <manifest>",
		Short: "Regenerate a manifest's output whenever the manifest changes",
		Long: `Watch generates the manifest's output once, then keeps it up to date,
regenerating on every save of the manifest file. A manifest that fails to
load or render logs the error and keeps the watch alive. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			manifestPath := args[0]

			logger.Info("watching", "manifest", manifestPath)
			err := emit.Watch(cmd.Context(), manifestPath, func(outPath string, err error) {
				if err != nil {
					logger.Error("generation failed", "manifest", manifestPath, "err", err)
					return
				}
				logger.Info("generated", "output", outPath)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
