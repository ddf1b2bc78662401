package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shadowquest/internal/companion"
	"shadowquest/internal/config"
	"shadowquest/internal/ui"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Talk to your companion",
		Long:  "Sends a message to the companion. With no SQ_GEMINI_API_KEY set, the companion answers from its local repertoire.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("say something")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log := newLogger()
			defer func() { _ = log.Sync() }()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			completed, total, err := svc.Progress(ctx)
			if err != nil {
				return err
			}
			percent := 0
			if total > 0 {
				percent = completed * 100 / total
			}
			cctx := companion.BuildContext(percent, completed, total, cfg.UserName)

			var client companion.Client
			if cfg.GeminiAPIKey != "" {
				client, err = companion.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
				if err != nil {
					log.Warn("companion client unavailable, using fallback", zap.Error(err))
					client = nil
				}
			}
			gateway := companion.NewGateway(client, log)

			reply := gateway.SendMessage(ctx, strings.Join(args, " "), nil, cctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSparkle, reply.Text)
			return nil
		},
	}
	return cmd
}
