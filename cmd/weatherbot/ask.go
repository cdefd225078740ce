package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/weatherbot/pkg/conv"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:     "ask <message>",
	Short:   "Ask a single question and print the answer",
	Example: `  weatherbot ask "What's the weather in London?"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout for the answer
		ctx, flushLog := setupLoggerTo(cmd.Context(), os.Stderr)
		defer flushLog()

		a := newApp(ctx)
		defer a.db.Close()

		sess := a.sessions.Get("ask-" + uuid.NewString())
		reply, ok := a.bot.Handle(ctx, sess, strings.Join(args, " "))
		if !ok {
			return errors.New("message is empty")
		}

		fmt.Fprintln(cmd.OutOrStdout(), conv.MarkdownToText([]byte(reply)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
