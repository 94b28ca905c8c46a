package fieldpath

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Hint carries the UI-level identifiers available for one bound element.
// Path, when set, is an explicit declaration and wins over everything else.
type Hint struct {
	Path Path   // explicit declared path attribute
	ID   string // element id attribute
	Name string // element name attribute
}

// ResolverFunc is a project-supplied hook consulted before registry lookups.
// Returning the zero path means "no opinion" and resolution continues.
type ResolverFunc func(Hint) Path

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverFunc installs a custom resolution hook.
func WithResolverFunc(fn ResolverFunc) ResolverOption {
	return func(r *Resolver) { r.custom = fn }
}

// WithKnownPaths pre-registers canonical paths for registry lookup.
func WithKnownPaths(paths ...Path) ResolverOption {
	return func(r *Resolver) { r.Register(paths...) }
}

// WithStrictResolution makes resolution failures fatal configuration errors
// instead of logged diagnostics.
func WithStrictResolution() ResolverOption {
	return func(r *Resolver) { r.strict = true }
}

// WithLogger sets the logger used for non-strict resolution diagnostics.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver maps UI hints onto canonical field paths. Safe for concurrent use.
type Resolver struct {
	mu       sync.RWMutex
	registry map[string]Path
	custom   ResolverFunc
	strict   bool
	log      *slog.Logger
}

// NewResolver creates a resolver with an empty registry.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: make(map[string]Path),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds canonical paths to the registry, keyed by their camelCase
// accessor form. Registering the same path twice is a no-op.
func (r *Resolver) Register(paths ...Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range paths {
		if p.IsZero() || p.IsRoot() {
			continue
		}
		r.registry[p.Accessor()] = p
	}
}

// Strict reports whether resolution failures are fatal.
func (r *Resolver) Strict() bool { return r.strict }

// Resolve maps a hint to a canonical path using the documented precedence
// chain. On failure it returns ErrUnresolvedHint (or ErrEmptyHint when the
// hint is blank); in non-strict mode it additionally logs a warning so
// misconfigured bindings are visible during development.
func (r *Resolver) Resolve(h Hint) (Path, error) {
	if !h.Path.IsZero() {
		return h.Path, nil
	}

	if r.custom != nil {
		if p := r.custom(h); !p.IsZero() {
			return p, nil
		}
	}

	ident := h.ID
	if ident == "" {
		ident = h.Name
	}
	if ident == "" {
		return "", r.fail(h, ErrEmptyHint)
	}

	r.mu.RLock()
	p, ok := r.registry[ident]
	r.mu.RUnlock()
	if ok {
		return p, nil
	}

	// Underscored ids convert positionally; camelCase ids without a registry
	// entry cannot be split reliably, so they stay unresolved.
	if strings.Contains(ident, "_") {
		return FromUnderscores(ident), nil
	}

	return "", r.fail(h, ErrUnresolvedHint)
}

func (r *Resolver) fail(h Hint, sentinel error) error {
	err := fmt.Errorf("%w: id=%q name=%q", sentinel, h.ID, h.Name)
	if !r.strict {
		r.log.Warn("field path resolution failed, field untracked",
			slog.String("id", h.ID),
			slog.String("name", h.Name),
		)
	}
	return err
}
