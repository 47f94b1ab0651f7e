package main

import (
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-c4/pkg/config"
	"github.com/dd0wney/cluso-c4/pkg/logging"
	"github.com/dd0wney/cluso-c4/pkg/metrics"
	"github.com/dd0wney/cluso-c4/pkg/model"
)

type app struct {
	configPath  string
	showMetrics bool

	cfg      *config.Config
	registry *metrics.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "c4model",
		Short:         "Build and inspect C4 architecture models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Build the sample model and print its elements and relationships",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.buildModel(cmd)
			if err != nil {
				return err
			}
			printModel(cmd.OutOrStdout(), m)
			if a.showMetrics && a.registry != nil {
				return a.registry.WriteText(cmd.OutOrStdout())
			}
			return nil
		},
	}
	demo.Flags().BoolVar(&a.showMetrics, "metrics", false, "print model metrics after the model")

	check := &cobra.Command{
		Use:   "check",
		Short: "Run consistency checks over the sample model",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.buildModel(cmd)
			if err != nil {
				return err
			}
			return printCheck(cmd.OutOrStdout(), m)
		},
	}

	root.AddCommand(demo, check)
	return root
}

func (a *app) loadConfig() error {
	if a.configPath == "" {
		a.cfg = config.Default()
	} else {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.cfg.Metrics.Enabled {
		a.registry = metrics.NewRegistryWithNamespace(a.cfg.Metrics.Namespace)
	}
	return nil
}

func (a *app) buildModel(cmd *cobra.Command) (*model.Model, error) {
	logger := logging.NewJSONLogger(cmd.ErrOrStderr(), logging.InfoLevel)
	return buildSampleModel(a.cfg.ModelOptions(logger, a.registry)...)
}
