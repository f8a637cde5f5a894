package main

import (
	"os"

	"github.com/kuberlab/vsprof/cmd/logging"
	"github.com/kuberlab/vsprof/pkg/config"
	"github.com/kuberlab/vsprof/pkg/utils"
	"github.com/spf13/cobra"
)

const (
	defaultConfigPath = "vsprof.yaml"
)

var (
	configPath string
	overrides  config.Overrides
)

func initConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if !cmd.Flags().Changed("config") {
		path = utils.FromEnv(utils.ConfigVar, configPath)
	}
	if err := config.InitConfig(path); err != nil {
		return err
	}
	logging.InitLogging(config.Config.LogLevel)
	return config.Config.Apply(overrides)
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:               "vsprof",
		Short:             "Scope duration profiler: demo workload and log viewer",
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	p := rootCmd.PersistentFlags()
	// Declare common arguments.
	p.StringVar(&logging.LogLevel, "log-level", "", "Logging level. One of (debug, info, warning, error)")
	p.StringVarP(&configPath, "config", "", defaultConfigPath, "Path to config file")
	p.StringVarP(&overrides.Output, "output", "o", "", "Statistics log file")
	p.StringVar(&overrides.Resolution, "resolution", "", "Time unit of recorded durations, e.g. 1ms")
	p.StringVar(&overrides.FlushInterval, "flush-interval", "", "Save statistics periodically, e.g. 30s")

	// Add all commands
	rootCmd.AddCommand(
		NewDemoCmd(),
		NewShowCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
