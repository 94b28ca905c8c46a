package formstate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate"
	"github.com/dmitrymomot/formstate/pkg/display"
	"github.com/dmitrymomot/formstate/pkg/formdata"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("unknown error strategy fails construction", func(t *testing.T) {
		t.Parallel()

		_, err := formstate.New(formdata.Empty(), noopSuite(),
			formstate.WithErrorStrategy("bogus"))
		require.ErrorIs(t, err, formstate.ErrInvalidConfig)
	})

	t.Run("negative debounce fails construction", func(t *testing.T) {
		t.Parallel()

		_, err := formstate.New(formdata.Empty(), noopSuite(),
			formstate.WithDebounce(-time.Second))
		require.ErrorIs(t, err, formstate.ErrInvalidConfig)
	})

	t.Run("nil strategy ref keeps the default", func(t *testing.T) {
		t.Parallel()

		form := formstate.MustNew(formdata.Empty(), requiredSuite("name"),
			formstate.WithErrorStrategyRef(nil))
		defer form.Close()

		require.NoError(t, form.SetField("name", ""))
		require.False(t, form.Field("name").ShowErrors(), "default on-touch hides untouched errors")
	})
}

func TestDefaultsFromEnv(t *testing.T) {
	t.Run("reads strategy and debounce from the environment", func(t *testing.T) {
		t.Setenv("FORMSTATE_ERROR_STRATEGY", "always")
		t.Setenv("FORMSTATE_DEBOUNCE", "0s")

		form := formstate.MustNew(formdata.Empty(), requiredSuite("name"),
			formstate.DefaultsFromEnv())
		defer form.Close()

		require.NoError(t, form.SetField("name", ""))
		require.True(t, form.Field("name").ShowErrors(), "always strategy shows errors without touch")
	})

	t.Run("invalid strategy value fails construction", func(t *testing.T) {
		t.Setenv("FORMSTATE_ERROR_STRATEGY", "whenever")

		_, err := formstate.New(formdata.Empty(), noopSuite(), formstate.DefaultsFromEnv())
		require.ErrorIs(t, err, formstate.ErrInvalidConfig)
	})

	t.Run("explicit options given later win", func(t *testing.T) {
		t.Setenv("FORMSTATE_ERROR_STRATEGY", "always")

		form := formstate.MustNew(formdata.Empty(), requiredSuite("name"),
			formstate.DefaultsFromEnv(),
			formstate.WithErrorStrategy(display.StrategyManual))
		defer form.Close()

		require.NoError(t, form.SetField("name", ""))
		require.False(t, form.Field("name").ShowErrors())
	})
}
