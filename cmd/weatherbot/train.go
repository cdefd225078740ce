package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/internal/providers/smalltalk"
	"github.com/sandevgo/weatherbot/pkg/log"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train <file>",
	Short: "Teach the small talk corpus new conversations",
	Long: `Reads conversations from a text file and adds them to the small talk corpus.
Conversations are separated by blank lines; every line is a reply to the line before it.
Lines starting with # are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		appCfg := config.NewAppConfig(ctx)

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open training file: %w", err)
		}
		defer f.Close()

		conversations, err := smalltalk.ReadConversations(f)
		if err != nil {
			return err
		}

		db, repo, err := initStorage(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		corpus := smalltalk.NewCorpus(repo, appCfg.SmallTalkMinConfidence)
		for _, c := range conversations {
			if err := corpus.Train(ctx, c); err != nil {
				return err
			}
		}

		total, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		logger.Info().
			Int("conversations", len(conversations)).
			Int("statements", total).
			Msg("small talk corpus trained")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
}
