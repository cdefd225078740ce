package main

import (
	"fmt"

	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/pkg/env"
	"github.com/spf13/cobra"
)

var showSecrets bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration in .env format",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		configs := []any{appCfg, config.NewWeatherConfig(ctx)}
		if appCfg.IsTelegramSelected() {
			configs = append(configs, config.NewTelegramConfig(ctx))
		}
		if appCfg.EnableHTTP {
			configs = append(configs, config.NewHTTPConfig(ctx))
		}
		if appCfg.SmallTalk == config.SmallTalkLLM {
			configs = append(configs, config.NewLLMConfig(ctx))
		}

		opts := []env.Option{env.WithZeroValues()}
		if !showSecrets {
			opts = append(opts, env.WithMaskedSecrets())
		}

		out, err := env.MarshalEnv(configs, opts...)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print API keys and tokens in clear text")
	rootCmd.AddCommand(envCmd)
}
