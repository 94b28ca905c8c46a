package formstate_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate"
	"github.com/dmitrymomot/formstate/pkg/display"
	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
	"github.com/dmitrymomot/formstate/pkg/suite"
)

func noopSuite() *suite.RuleSet {
	return suite.New("noop", func(*suite.Runner) {})
}

func requiredSuite(fields ...fieldpath.Path) *suite.RuleSet {
	return suite.New("required", func(r *suite.Runner) {
		for _, f := range fields {
			field := f
			r.Test(field, field.String()+" is required", func() bool {
				return r.String(field) != ""
			})
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a rule suite", func(t *testing.T) {
		t.Parallel()

		_, err := formstate.New(formdata.Empty(), nil)
		require.ErrorIs(t, err, formstate.ErrInvalidConfig)
	})

	t.Run("assigns a unique identifier", func(t *testing.T) {
		t.Parallel()

		a := formstate.MustNew(formdata.Empty(), noopSuite())
		defer a.Close()
		b := formstate.MustNew(formdata.Empty(), noopSuite())
		defer b.Close()

		require.NotEqual(t, uuid.Nil, a.ID())
		require.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("must variant panics on configuration errors", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() {
			formstate.MustNew(formdata.Empty(), nil)
		})
	})
}

func TestField(t *testing.T) {
	t.Parallel()

	t.Run("creates trackers lazily and reuses them", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite())
		defer form.Close()

		fs := form.Field("profile.firstName")
		require.Equal(t, fieldpath.Path("profile.firstName"), fs.Path())
		require.Same(t, fs, form.Field("profile.firstName"))
	})

	t.Run("fresh tracker carries no state", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite())
		defer form.Close()

		fs := form.Field("email")
		require.False(t, fs.Touched())
		require.False(t, fs.Dirty())
		require.False(t, fs.Tested())
		require.False(t, fs.Pending())
		require.Empty(t, fs.Errors())
		require.Empty(t, fs.Warnings())
	})
}

func TestTouch(t *testing.T) {
	t.Parallel()

	form := formstate.MustNew(formdata.Empty(), noopSuite())
	defer form.Close()

	var changes int
	sub := form.OnChange(func() { changes++ })
	defer sub.Unsubscribe()

	form.Touch("email")
	require.True(t, form.Field("email").Touched())
	require.Equal(t, 1, changes)

	// Repeated touches are no-ops and notify nothing.
	form.Touch("email")
	form.Touch("email")
	require.Equal(t, 1, changes)
}

func TestOnChange(t *testing.T) {
	t.Parallel()

	form := formstate.MustNew(formdata.Empty(), noopSuite())
	defer form.Close()

	var changes int
	sub := form.OnChange(func() { changes++ })

	form.Touch("a")
	require.Equal(t, 1, changes)

	sub.Unsubscribe()
	form.Touch("b")
	require.Equal(t, 1, changes, "unsubscribed callback must not fire")
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite())
		defer form.Close()

		p, err := form.ResolvePath(fieldpath.Hint{Path: "profile.email", ID: "something_else"})
		require.NoError(t, err)
		require.Equal(t, fieldpath.Path("profile.email"), p)
	})

	t.Run("registered fields resolve by accessor", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite())
		defer form.Close()
		form.RegisterFields("profile.firstName")

		p, err := form.ResolvePath(fieldpath.Hint{ID: "profileFirstName"})
		require.NoError(t, err)
		require.Equal(t, fieldpath.Path("profile.firstName"), p)
	})

	t.Run("dependency config seeds the registry", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite(),
			formstate.WithDependencies(formstate.NewDependencyConfig().
				WhenChanged("credentials.password", "credentials.confirmPassword")),
		)
		defer form.Close()

		p, err := form.ResolvePath(fieldpath.Hint{ID: "credentialsConfirmPassword"})
		require.NoError(t, err)
		require.Equal(t, fieldpath.Path("credentials.confirmPassword"), p)
	})

	t.Run("underscored identifiers convert positionally", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite())
		defer form.Close()

		p, err := form.ResolvePath(fieldpath.Hint{Name: "billing_address_street"})
		require.NoError(t, err)
		require.Equal(t, fieldpath.Path("billing.address.street"), p)
	})

	t.Run("custom resolver hook runs before the registry", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite(),
			formstate.WithFieldNameResolver(func(h fieldpath.Hint) fieldpath.Path {
				if h.ID == "legacy-email" {
					return "contact.email"
				}
				return ""
			}),
		)
		defer form.Close()

		p, err := form.ResolvePath(fieldpath.Hint{ID: "legacy-email"})
		require.NoError(t, err)
		require.Equal(t, fieldpath.Path("contact.email"), p)
	})

	t.Run("unresolvable hint reports an error", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), noopSuite(), formstate.WithStrictResolution())
		defer form.Close()

		_, err := form.ResolvePath(fieldpath.Hint{ID: "unknownCamelCase"})
		require.ErrorIs(t, err, fieldpath.ErrUnresolvedHint)
	})
}

func TestClearFields(t *testing.T) {
	t.Parallel()

	initial, err := formdata.FromMap(map[string]any{
		"keep":    "stays",
		"temp":    "goes",
		"profile": map[string]any{"bio": "also stays"},
	})
	require.NoError(t, err)

	form := formstate.MustNew(initial, requiredSuite("temp"))
	defer form.Close()

	require.NoError(t, form.ClearFields("temp"))

	model := form.Model()
	require.False(t, model.Has("temp"))
	require.Equal(t, "stays", model.String("keep"))
	require.Equal(t, "also stays", model.String("profile.bio"))

	// The cleared field was re-validated against its new empty value and is
	// dirty relative to the initial model.
	fs := form.Field("temp")
	require.True(t, fs.Dirty())
	require.Equal(t, []string{"temp is required"}, fs.Errors())
}

func TestShowErrors(t *testing.T) {
	t.Parallel()

	t.Run("on-touch hides errors until the field is touched", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), requiredSuite("name"))
		defer form.Close()

		require.NoError(t, form.SetField("name", ""))
		fs := form.Field("name")
		require.True(t, fs.HasErrors())
		require.False(t, fs.ShowErrors())

		form.Touch("name")
		require.True(t, fs.ShowErrors())
	})

	t.Run("strategy can change at runtime", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), requiredSuite("name"))
		defer form.Close()

		require.NoError(t, form.SetField("name", ""))
		fs := form.Field("name")
		require.False(t, fs.ShowErrors())

		form.SetErrorStrategy(display.StrategyAlways)
		require.True(t, fs.ShowErrors())

		form.SetErrorStrategy(display.StrategyManual)
		require.False(t, fs.ShowErrors())
	})

	t.Run("shared strategy ref steers multiple forms", func(t *testing.T) {
		t.Parallel()

		ref := display.NewRef(display.StrategyOnTouch)
		a := formstate.MustNew(formdata.Empty(), requiredSuite("name"), formstate.WithErrorStrategyRef(ref))
		defer a.Close()
		b := formstate.MustNew(formdata.Empty(), requiredSuite("name"), formstate.WithErrorStrategyRef(ref))
		defer b.Close()

		require.NoError(t, a.SetField("name", ""))
		require.NoError(t, b.SetField("name", ""))
		require.False(t, a.Field("name").ShowErrors())
		require.False(t, b.Field("name").ShowErrors())

		ref.Store(display.StrategyAlways)
		require.True(t, a.Field("name").ShowErrors())
		require.True(t, b.Field("name").ShowErrors())
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	form := formstate.MustNew(formdata.Empty(), requiredSuite("name"))
	defer form.Close()

	require.NoError(t, form.SetField("name", ""))
	form.Touch("name")
	require.ErrorIs(t, form.Submit(context.Background()), formstate.ErrFormInvalid)
	require.True(t, form.Submitted())

	fresh, err := formdata.FromMap(map[string]any{"name": "clean"})
	require.NoError(t, err)
	form.Reset(fresh)

	require.False(t, form.Submitted())
	require.True(t, form.Valid())
	require.True(t, form.Model().Equal(fresh))

	fs := form.Field("name")
	require.False(t, fs.Touched())
	require.False(t, fs.Dirty())
	require.False(t, fs.Tested())
	require.Empty(t, fs.Errors())
}

func TestClose(t *testing.T) {
	t.Parallel()

	form := formstate.MustNew(formdata.Empty(), noopSuite())

	require.NoError(t, form.Close())
	require.NoError(t, form.Close(), "close is idempotent")

	require.ErrorIs(t, form.SetField("name", "x"), formstate.ErrFormClosed)
	require.ErrorIs(t, form.ClearFields("name"), formstate.ErrFormClosed)
	require.ErrorIs(t, form.Submit(context.Background()), formstate.ErrFormClosed)
}
