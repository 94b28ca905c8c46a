package formstate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formstate/pkg/display"
	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
	"github.com/dmitrymomot/formstate/pkg/schemacheck"
	"github.com/dmitrymomot/formstate/pkg/signal"
	"github.com/dmitrymomot/formstate/pkg/suite"
)

// Form binds a rule suite to a form data model: it re-validates on edits,
// tracks per-field interaction state, decides error visibility, and exposes
// the aggregate read model for presentation layers.
type Form struct {
	id       uuid.UUID
	adapter  *suite.Adapter
	resolver *fieldpath.Resolver
	cfg      config

	// ctx bounds every in-flight validation; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	model      formdata.Snapshot
	initial    formdata.Snapshot
	fields     map[fieldpath.Path]*FieldState
	created    []fieldpath.Path
	runs       map[fieldpath.Path]*fieldRun
	seq        map[fieldpath.Path]uint64
	submitted  bool
	submitting bool
	schema     schemacheck.Result
	closed     bool

	rev       *signal.Value[uint64]
	aggregate *signal.Computed[AggregateState]
}

// New constructs a form over the initial model and rule suite.
func New(initial formdata.Snapshot, s suite.Suite, opts ...Option) (*Form, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: rule suite is required", ErrInvalidConfig)
	}

	resolverOpts := []fieldpath.ResolverOption{
		fieldpath.WithLogger(cfg.log),
		fieldpath.WithKnownPaths(cfg.order...),
		fieldpath.WithKnownPaths(cfg.deps.Paths()...),
	}
	if cfg.resolverFn != nil {
		resolverOpts = append(resolverOpts, fieldpath.WithResolverFunc(cfg.resolverFn))
	}
	if cfg.strict {
		resolverOpts = append(resolverOpts, fieldpath.WithStrictResolution())
	}

	ctx, cancel := context.WithCancel(context.Background())
	f := &Form{
		id:       uuid.New(),
		adapter:  suite.NewAdapter(s, suite.WithLogger(cfg.log)),
		resolver: fieldpath.NewResolver(resolverOpts...),
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
		model:    initial,
		initial:  initial,
		fields:   make(map[fieldpath.Path]*FieldState),
		runs:     make(map[fieldpath.Path]*fieldRun),
		seq:      make(map[fieldpath.Path]uint64),
		rev:      signal.NewValue(uint64(0)),
	}
	f.aggregate = signal.NewComputed(f.computeAggregate, f.rev)
	return f, nil
}

// MustNew is New panicking on configuration errors.
func MustNew(initial formdata.Snapshot, s suite.Suite, opts ...Option) *Form {
	f, err := New(initial, s, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// ID returns the form instance identifier.
func (f *Form) ID() uuid.UUID { return f.id }

// Model returns the current immutable model snapshot.
func (f *Form) Model() formdata.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.model
}

// Values decodes the current model into a plain map.
func (f *Form) Values() map[string]any { return f.Model().Map() }

// Field returns the state tracker for a path, creating it lazily. Trackers
// live for the lifetime of the form.
func (f *Form) Field(path fieldpath.Path) *FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldLocked(path)
}

func (f *Form) fieldLocked(path fieldpath.Path) *FieldState {
	fs, ok := f.fields[path]
	if !ok {
		fs = newFieldState(f, path)
		f.fields[path] = fs
		f.created = append(f.created, path)
	}
	return fs
}

// Touch marks a field as touched (blur or explicit call). Idempotent; touch
// alone never triggers re-validation.
func (f *Form) Touch(path fieldpath.Path) {
	if f.Field(path).touch() {
		f.bump()
	}
}

// Submitted reports the monotonic submission flag: once a submit ran, it
// stays set for the rest of the session (Reset starts a new session).
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Submitting reports whether an in-flight submit has not yet settled.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SetErrorStrategy swaps the display strategy at runtime.
func (f *Form) SetErrorStrategy(s display.Strategy) {
	f.cfg.strategy.Store(s)
	f.bump()
}

func (f *Form) strategy() display.Strategy {
	return f.cfg.strategy.Load()
}

// ResolvePath maps a UI hint to a canonical field path through the form's
// resolver chain. In strict mode an unresolved hint is a fatal configuration
// error; otherwise the caller should treat the field as untracked.
func (f *Form) ResolvePath(h fieldpath.Hint) (fieldpath.Path, error) {
	return f.resolver.Resolve(h)
}

// RegisterFields adds canonical paths to the resolver registry, typically
// called as UI controls bind.
func (f *Form) RegisterFields(paths ...fieldpath.Path) {
	f.resolver.Register(paths...)
}

// ClearFields wipes the listed paths from the model, leaving every other key
// untouched, then re-validates each cleared field.
func (f *Form) ClearFields(paths ...fieldpath.Path) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	next, err := f.model.Without(paths...)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.model = next
	for _, p := range paths {
		if p.IsZero() || p.IsRoot() {
			continue
		}
		fs := f.fieldLocked(p)
		fs.setDirty(f.initial.Has(p))
	}
	f.mu.Unlock()
	f.bump()

	for _, p := range paths {
		if p.IsZero() || p.IsRoot() {
			continue
		}
		f.revalidate(p)
	}
	return nil
}

// Reset replaces the model wholesale and starts a fresh session: all field
// state, submission flags, schema state, and in-flight work are discarded.
func (f *Form) Reset(initial formdata.Snapshot) {
	f.mu.Lock()
	f.cancelAllRunsLocked()
	f.model = initial
	f.initial = initial
	for _, fs := range f.fields {
		fs.reset()
	}
	f.submitted = false
	f.submitting = false
	f.schema = schemacheck.Result{}
	f.mu.Unlock()
	f.bump()
}

// Close tears the form down: every in-flight validation is aborted and all
// debounce timers cleared. The form rejects further edits.
func (f *Form) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	f.cancelAllRunsLocked()
	f.mu.Unlock()

	f.cancel()
	return nil
}

// OnChange subscribes to any observable change of the form: model edits,
// validation results, touch transitions, submission flags. The callback runs
// synchronously on the mutating goroutine.
func (f *Form) OnChange(fn func()) signal.Subscription {
	return f.rev.Subscribe(fn)
}

// bump advances the change revision. Never called with f.mu held: rev
// subscribers run synchronously and may read form state.
func (f *Form) bump() {
	f.rev.Update(func(v uint64) uint64 { return v + 1 })
}

func (f *Form) logger() *slog.Logger { return f.cfg.log }

// orderedFieldsLocked returns tracker paths in display order: the configured
// field order first, then remaining trackers in creation order.
func (f *Form) orderedFieldsLocked() []fieldpath.Path {
	out := make([]fieldpath.Path, 0, len(f.created))
	for _, p := range f.cfg.order {
		if _, ok := f.fields[p]; ok && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	for _, p := range f.created {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
