package automap

import (
	"log/slog"

	"automapper/internal/analyze"
	"automapper/internal/inspect"
	"automapper/internal/rules"
)

// PropertyClaimer reports whether a registered user-type convention would accept a property
// built for a member. The property step owns every member a claimer accepts.
type PropertyClaimer interface {
	ClaimsProperty(p inspect.PropertyInspector) bool
}

// Skipper excludes members by name, e.g. from the ignore lists of a declaration file.
type Skipper interface {
	Skips(owner analyze.TypeID, member string) bool
}

// Config contains configuration for an Automapper.
type Config struct {
	// Rules is the discovery and naming policy.
	Rules rules.Rules
	// Claimer answers user-type acceptance probes for the property step. Optional.
	Claimer PropertyClaimer
	// Skipper excludes members before any step is consulted. Optional.
	Skipper Skipper
	// VerifyOwnership asks every step about every member and fails on overlapping acceptance.
	VerifyOwnership bool
	// ExpandRelationships maps the targets of references and entity collections as nested classes.
	ExpandRelationships bool
	// MaxDepth caps nested expansion of components and related entities.
	MaxDepth int
	// Logger receives step decisions at debug level.
	Logger *slog.Logger
}

// DefaultConfig returns the default automapping configuration.
func DefaultConfig() Config {
	return Config{
		Rules:           rules.New(rules.DefaultOptions()),
		VerifyOwnership: true,
		MaxDepth:        8,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Rules == nil {
		c.Rules = def.Rules
	}

	if c.MaxDepth <= 0 {
		c.MaxDepth = def.MaxDepth
	}

	if c.Logger == nil {
		c.Logger = def.Logger
	}

	return c
}
