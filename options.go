package formstate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/formstate/pkg/display"
	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
	"github.com/dmitrymomot/formstate/pkg/schemacheck"
)

// SubmitHandler runs the host's submit action once validation passes. Its
// error fails the submit; the submitting flag stays true until it returns.
type SubmitHandler func(ctx context.Context, model formdata.Snapshot) error

type config struct {
	strategy          *display.Ref
	debounce          time.Duration
	strict            bool
	resolverFn        fieldpath.ResolverFunc
	deps              *DependencyConfig
	checker           schemacheck.Checker
	countSchemaIssues bool
	order             []fieldpath.Path
	log               *slog.Logger
	submitHandler     SubmitHandler
	err               error
}

func defaultConfig() config {
	return config{
		strategy: display.NewRef(display.DefaultStrategy),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a form during construction.
type Option func(*config)

// WithErrorStrategy sets a fixed display strategy.
func WithErrorStrategy(s display.Strategy) Option {
	return func(c *config) {
		if !s.Valid() {
			c.err = fmt.Errorf("%w: unknown error strategy %q", ErrInvalidConfig, s)
			return
		}
		c.strategy = display.NewRef(s)
	}
}

// WithErrorStrategyRef shares a live-updatable strategy holder, so the host
// can change the display policy at runtime.
func WithErrorStrategyRef(ref *display.Ref) Option {
	return func(c *config) {
		if ref != nil {
			c.strategy = ref
		}
	}
}

// WithDebounce delays scoped validation after an edit; further edits to the
// same field within the window restart it. Zero validates immediately.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: negative debounce %v", ErrInvalidConfig, d)
			return
		}
		c.debounce = d
	}
}

// WithStrictResolution makes field path resolution failures fatal
// configuration errors instead of logged diagnostics.
func WithStrictResolution() Option {
	return func(c *config) { c.strict = true }
}

// WithFieldNameResolver installs a custom hint resolution hook, consulted
// after explicit path declarations and before registry lookups.
func WithFieldNameResolver(fn fieldpath.ResolverFunc) Option {
	return func(c *config) { c.resolverFn = fn }
}

// WithDependencies wires cross-field re-validation: editing a trigger also
// re-validates its configured dependents.
func WithDependencies(deps *DependencyConfig) Option {
	return func(c *config) { c.deps = deps }
}

// WithSchemaChecker runs a structural schema validator once per submit. Its
// issues land in the aggregate's Schema slice and stay out of the error
// count unless WithSchemaIssuesCounted is also set.
func WithSchemaChecker(checker schemacheck.Checker) Option {
	return func(c *config) { c.checker = checker }
}

// WithSchemaIssuesCounted folds schema issues into ErrorCount and overall
// validity.
func WithSchemaIssuesCounted() Option {
	return func(c *config) { c.countSchemaIssues = true }
}

// WithFieldOrder declares the field order used for FirstInvalidField. Fields
// outside the list rank after it, in creation order.
func WithFieldOrder(paths ...fieldpath.Path) Option {
	return func(c *config) { c.order = paths }
}

// WithLogger sets the diagnostics logger. Silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSubmitHandler runs the host action after a valid submit, keeping the
// submitting flag up until it settles.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(c *config) { c.submitHandler = fn }
}

type envConfig struct {
	Debounce time.Duration `env:"FORMSTATE_DEBOUNCE" envDefault:"0s"`
	Strategy string        `env:"FORMSTATE_ERROR_STRATEGY" envDefault:"on-touch"`
	Strict   bool          `env:"FORMSTATE_STRICT_RESOLUTION" envDefault:"false"`
}

// DefaultsFromEnv fills debounce, error strategy, and strict resolution from
// FORMSTATE_* environment variables. Explicit options given after this one
// still win.
func DefaultsFromEnv() Option {
	return func(c *config) {
		var ec envConfig
		if err := env.Parse(&ec); err != nil {
			c.err = fmt.Errorf("%w: env defaults: %v", ErrInvalidConfig, err)
			return
		}
		s, err := display.ParseStrategy(ec.Strategy)
		if err != nil {
			c.err = fmt.Errorf("%w: env defaults: %v", ErrInvalidConfig, err)
			return
		}
		c.debounce = ec.Debounce
		c.strategy = display.NewRef(s)
		c.strict = ec.Strict
	}
}
