// Package main provides the automapper CLI.
//
// automapper loads Go packages, builds the mapping tree of their entities by convention and
// either prints the tree or exports it as a declaration file to review and lock.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"automapper/internal/config"
	"automapper/internal/mapping"
	"automapper/internal/report"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	dir     string
	output  string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "automapper",
		Short:         "Build persistence mappings from Go types by convention",
		Long:          `automapper reflects over Go packages and builds the class mapping tree of their entities: identifiers, properties, components, references and collections, with explicit declarations and conventions applied on top.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "Config file (default: ./automapper.yaml if present)")
	flags.StringVar(&a.dir, "dir", "", "Directory used to resolve package patterns")
	flags.StringSliceP("packages", "p", nil, "Package patterns to load (comma-separated)")
	flags.StringSliceP("types", "t", nil, "Root types to map (default: every entity in the packages)")
	flags.StringP("declarations", "d", "", "Declaration file applied after automapping")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("expand", false, "Map the targets of references and entity collections as nested classes")
	flags.Int("max-depth", 0, "Maximum nesting of components and expanded classes")
	flags.String("column-style", "", "Column naming style: verbatim or snake")
	flags.Bool("plural-tables", false, "Name tables after the plural of the type name")

	for key, flag := range map[string]string{
		"packages":                     "packages",
		"types":                        "types",
		"declarations":                 "declarations",
		"log_level":                    "log-level",
		"automap.expand_relationships": "expand",
		"automap.max_depth":            "max-depth",
		"rules.column_style":           "column-style",
		"conventions.plural_tables":    "plural-tables",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(a.inspectCmd(), a.scaffoldCmd())

	return root
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved mapping tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, log, err := a.run(cmd)
			if err != nil {
				return err
			}

			logDiagnostics(log, res)

			if err := report.NewTextFormatter(cmd.OutOrStdout()).Format(res.classes...); err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			return nil
		},
	}
}

func (a *app) scaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Export the resolved mapping tree as a declaration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, log, err := a.run(cmd)
			if err != nil {
				return err
			}

			df := mapping.Scaffold(res.classes...)

			if a.output != "" {
				if err := mapping.WriteFile(df, a.output); err != nil {
					return err
				}

				log.Info("declarations written", "path", a.output, "entities", len(df.Entities))

				return nil
			}

			data, err := mapping.Marshal(df)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&a.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// run loads the configuration, sets up logging on the command's error stream and builds the trees.
func (a *app) run(cmd *cobra.Command) (*result, *slog.Logger, error) {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return nil, nil, err
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	res, err := build(cfg, a.dir, log)
	if err != nil {
		return nil, nil, err
	}

	return res, log, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	l, _ := config.ParseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func logDiagnostics(log *slog.Logger, res *result) {
	for _, d := range res.recorder.All() {
		log.Debug(d.Message, "code", d.Code, "type", d.Type, "member", d.Member)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
