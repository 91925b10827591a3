package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dori/portfolio/internal/app"
	"github.com/dori/portfolio/internal/theme"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

var (
	memoryFlag   bool
	logLevelFlag string
	notifyFlag   bool
	themeFlag    string

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Track projects and items, and unlock awards along the way",
	Long: `portfolio - a personal project tracker

Projects hold items. Items have a priority (low, medium, high) and are either
open or completed. Adding and completing items unlocks awards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["app"] == "none" || cmd.Name() == "help" {
			return nil
		}
		return openApp(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application == nil {
			return nil
		}
		err := application.Close()
		application = nil
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Show version",
	Annotations: map[string]string{"app": "none"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "portfolio v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&memoryFlag, "memory", false, "Use a throwaway in-memory store")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&notifyFlag, "notify", false, "Send a desktop notification when an award is unlocked")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme ("+strings.Join(theme.Names(), ", ")+")")
	rootCmd.AddCommand(versionCmd)
}

func openApp(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("memory") {
		cfg.InMemory = memoryFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("notify") {
		cfg.Notify = notifyFlag
	}
	if flags.Changed("theme") {
		cfg.Theme = themeFlag
	}

	application, err = app.New(cfg)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
