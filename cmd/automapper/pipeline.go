package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"automapper/internal/analyze"
	"automapper/internal/automap"
	"automapper/internal/config"
	"automapper/internal/conventions"
	"automapper/internal/diagnostic"
	"automapper/internal/mapping"
	"automapper/internal/model"
	"automapper/internal/naming"
	"automapper/internal/rules"
)

// result is the outcome of one run: the resolved trees and what was recorded while building them.
type result struct {
	classes  []*model.ClassMapping
	recorder *diagnostic.Recorder
}

// build loads the configured packages, automaps the selected roots, applies the declaration file
// and runs the enabled conventions.
func build(cfg *config.Config, dir string, log *slog.Logger) (*result, error) {
	if len(cfg.Packages) == 0 {
		return nil, fmt.Errorf("no packages to load (set packages or --packages)")
	}

	graph, err := analyze.NewAnalyzer().WithDir(dir).LoadPackages(cfg.Packages...)
	if err != nil {
		return nil, err
	}

	log.Debug("packages loaded", "packages", len(graph.Packages), "types", len(graph.Types))

	acfg := cfg.AutomapConfig(log)

	roots, err := selectRoots(graph, cfg.Types, acfg.Rules)
	if err != nil {
		return nil, err
	}

	decls, declDiags, err := loadDeclarations(cfg.Declarations, graph, log)
	if err != nil {
		return nil, err
	}

	registry, err := conventions.NewRegistry(builtins(cfg)...)
	if err != nil {
		return nil, err
	}

	rec := diagnostic.NewRecorder()
	rec.Merge(declDiags)
	acfg.Claimer = registry

	if decls != nil {
		acfg.Skipper = rec.Skipper(decls)
	}

	am, err := automap.NewAutomapper(acfg)
	if err != nil {
		return nil, err
	}

	classes, err := am.MapAll(roots)
	if err != nil {
		return nil, err
	}

	if decls != nil {
		if err := decls.Apply(classes...); err != nil {
			return nil, fmt.Errorf("failed to apply declarations: %w", err)
		}
	}

	nodes := make([]model.Node, len(classes))
	for i, c := range classes {
		nodes[i] = c
	}

	applied := conventions.NewPipeline(registry,
		conventions.WithObserver(rec),
		conventions.WithLogger(log),
	).Apply(nodes...)

	log.Info("mapped", "classes", len(classes), "conventions_applied", applied,
		"recorded", len(rec.Infos))

	return &result{classes: classes, recorder: rec}, nil
}

// selectRoots resolves the requested type names. With no names, every entity declared in a
// loaded package is a root.
func selectRoots(graph *analyze.TypeGraph, names []string, r rules.Rules) ([]*analyze.TypeInfo, error) {
	if len(names) == 0 {
		var roots []*analyze.TypeInfo

		for id, t := range graph.Types {
			if _, loaded := graph.Packages[id.PkgPath]; loaded && r.IsEntity(t) {
				roots = append(roots, t)
			}
		}

		slices.SortFunc(roots, func(a, b *analyze.TypeInfo) int {
			return strings.Compare(a.ID.String(), b.ID.String())
		})

		if len(roots) == 0 {
			return nil, fmt.Errorf("no entities found in the loaded packages")
		}

		return roots, nil
	}

	roots := make([]*analyze.TypeInfo, 0, len(names))

	for _, name := range names {
		t := graph.Lookup(name)
		if t == nil {
			if s := naming.Suggest(name, candidates(graph, name), 3); len(s) > 0 {
				return nil, fmt.Errorf("type %q not found (did you mean %s?)", name, strings.Join(s, ", "))
			}

			return nil, fmt.Errorf("type %q not found", name)
		}

		roots = append(roots, t)
	}

	return roots, nil
}

// candidates lists the names a type name is compared with: qualified names, or bare names when
// name is bare.
func candidates(graph *analyze.TypeGraph, name string) []string {
	if strings.Contains(name, ".") {
		return graph.Names()
	}

	out := make([]string, 0, len(graph.Types))
	for id := range graph.Types {
		out = append(out, id.Name)
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// loadDeclarations compiles the declaration file at path. The returned diagnostics hold its
// warnings; errors are returned as err.
func loadDeclarations(path string, graph *analyze.TypeGraph, log *slog.Logger) (*mapping.Declarations, diagnostic.Diagnostics, error) {
	if path == "" {
		return nil, diagnostic.Diagnostics{}, nil
	}

	df, err := mapping.LoadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	decls, diags := mapping.Compile(df, graph)
	for _, w := range diags.Warnings {
		log.Warn(w.String())
	}

	if err := diags.Error(); err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("invalid declarations %s: %w", path, err)
	}

	log.Debug("declarations loaded", "path", path, "entities", decls.Len())

	return decls, *diags, nil
}

func builtins(cfg *config.Config) []any {
	var out []any

	if cfg.Conventions.PluralTables {
		out = append(out, conventions.PluralTableNames{Style: cfg.RulesOptions().ColumnStyle})
	}

	if cfg.Conventions.ForeignKeys {
		out = append(out, conventions.ForeignKeyNames{})
	}

	if cfg.Conventions.EnumsAsString {
		out = append(out, conventions.EnumAsString{})
	}

	return out
}
