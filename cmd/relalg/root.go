package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leengari/mini-relalg/internal/config"
	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
	"github.com/leengari/mini-relalg/internal/engine"
	"github.com/leengari/mini-relalg/internal/logging"
	"github.com/leengari/mini-relalg/internal/storage/loader"
)

// app holds what every subcommand needs once the root command has run
type app struct {
	configPath string
	logLevel   string
	fixtures   string

	logger  *slog.Logger
	closeFn func()
	engine  *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{closeFn: func() {}}

	cmd := &cobra.Command{
		Use:           "relalg",
		Short:         "Evaluate relational algebra operators over in-memory relations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.closeFn()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&a.fixtures, "file", "f", "", "YAML file defining the base relations")

	cmd.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newProjectCmd(a),
		newExplainCmd(a),
		newDemoCmd(a),
	)
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if _, err := cfg.Logging.SlogLevel(); err != nil {
			return err
		}
	}

	a.logger, a.closeFn = logging.SetupLogger(cfg.Logging)
	slog.SetDefault(a.logger)

	a.engine = engine.New(a.logger)
	a.engine.AddObserver(engine.NewLoggingObserver(a.logger))

	if a.fixtures == "" {
		return nil
	}
	rels, err := loader.LoadFile(a.fixtures, a.logger)
	if err != nil {
		return err
	}
	for _, rel := range rels {
		if err := a.engine.Register(rel); err != nil {
			return err
		}
	}
	return nil
}

// relation resolves the relation named by the --relation flag
func (a *app) relation(name string) (*schema.Relation, error) {
	if name == "" {
		return nil, fmt.Errorf("--relation is required")
	}
	return a.engine.Relation(name)
}

// parseAttributes turns "name" or "name:TYPE" arguments into attributes.
// A bare name takes its type from the schema; an unknown bare name keeps an
// empty type so the projection reports it as unknown.
func parseAttributes(s *schema.Schema, specs []string) ([]schema.Attribute, error) {
	attrs := make([]schema.Attribute, 0, len(specs))
	for _, spec := range specs {
		name, typeName, typed := strings.Cut(spec, ":")
		if !typed {
			attr, ok := s.Lookup(name)
			if !ok {
				attr = schema.Attribute{Name: name}
			}
			attrs = append(attrs, attr)
			continue
		}

		typ, err := data.ParseType(typeName)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, schema.Attribute{Name: name, Type: typ})
	}
	return attrs, nil
}
