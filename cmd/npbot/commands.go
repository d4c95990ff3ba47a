package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/EgorLis/osunpbot/internal/config"
	"github.com/EgorLis/osunpbot/internal/format"
)

func newRootCmd(env *config.Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "npbot",
		Short:        "osu! now playing bot for Twitch chat",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBot(env)
		},
	}
	rootCmd.PersistentFlags().StringVar(&env.ConfigPath, "config", env.ConfigPath, "path to config.json (env NPBOT_CONFIG)")

	rootCmd.AddCommand(newInitCmd(env))
	rootCmd.AddCommand(newCheckCmd(env))
	rootCmd.AddCommand(newPlaceholdersCmd())
	return rootCmd
}

func newInitCmd(env *config.Env) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(env.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", env.ConfigPath)
			}
			if err := config.Save(env.ConfigPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s, fill in username and token\n", env.ConfigPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newCheckCmd(env *config.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config file and list configured commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(env.ConfigPath)
			if err != nil {
				if errors.Is(err, config.ErrCreated) {
					return fmt.Errorf("no config found, a default one was written to %s", env.ConfigPath)
				}
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "channel: %s, cooldown: %s\n", cfg.ChannelName(), cfg.RateLimit())

			cmds := make([]string, 0, len(cfg.Templates))
			for name := range cfg.Templates {
				cmds = append(cmds, name)
			}
			sort.Strings(cmds)
			for _, name := range cmds {
				fmt.Fprintf(out, "  !%s -> %s\n", name, cfg.Templates[name])
			}
			return nil
		},
	}
}

func newPlaceholdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "placeholders",
		Short: "List placeholders usable in templates",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range format.Placeholders() {
				fmt.Fprintf(cmd.OutOrStdout(), "{%s}\n", name)
			}
		},
	}
}
