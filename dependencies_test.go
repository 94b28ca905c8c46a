package formstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate"
	"github.com/dmitrymomot/formstate/pkg/fieldpath"
)

func TestDependencyConfig(t *testing.T) {
	t.Parallel()

	t.Run("registers dependents per trigger", func(t *testing.T) {
		t.Parallel()

		cfg := formstate.NewDependencyConfig().
			WhenChanged("gender", "genderOther").
			WhenChanged("country", "state", "zip")

		require.Equal(t, []fieldpath.Path{"genderOther"}, cfg.DependentsOf("gender"))
		require.Equal(t, []fieldpath.Path{"state", "zip"}, cfg.DependentsOf("country"))
		require.Empty(t, cfg.DependentsOf("state"))
	})

	t.Run("drops self references and duplicates", func(t *testing.T) {
		t.Parallel()

		cfg := formstate.NewDependencyConfig().
			WhenChanged("password", "password", "confirmPassword").
			WhenChanged("password", "confirmPassword")

		require.Equal(t, []fieldpath.Path{"confirmPassword"}, cfg.DependentsOf("password"))
	})

	t.Run("bidirectional wires both directions", func(t *testing.T) {
		t.Parallel()

		cfg := formstate.NewDependencyConfig().
			Bidirectional("password", "confirmPassword")

		require.Equal(t, []fieldpath.Path{"confirmPassword"}, cfg.DependentsOf("password"))
		require.Equal(t, []fieldpath.Path{"password"}, cfg.DependentsOf("confirmPassword"))
	})

	t.Run("paths lists every mentioned field sorted", func(t *testing.T) {
		t.Parallel()

		cfg := formstate.NewDependencyConfig().
			WhenChanged("gender", "genderOther").
			Bidirectional("password", "confirmPassword")

		require.Equal(t, []fieldpath.Path{
			"confirmPassword", "gender", "genderOther", "password",
		}, cfg.Paths())
	})

	t.Run("nil config is inert", func(t *testing.T) {
		t.Parallel()

		var cfg *formstate.DependencyConfig
		require.Empty(t, cfg.DependentsOf("anything"))
		require.Empty(t, cfg.Paths())
	})
}

func TestDependencyConfigFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses a declarative dependency map", func(t *testing.T) {
		t.Parallel()

		cfg, err := formstate.DependencyConfigFromYAML([]byte(`
password: [confirmPassword]
confirmPassword: [password]
gender: [genderOther]
`))
		require.NoError(t, err)
		require.Equal(t, []fieldpath.Path{"confirmPassword"}, cfg.DependentsOf("password"))
		require.Equal(t, []fieldpath.Path{"password"}, cfg.DependentsOf("confirmPassword"))
		require.Equal(t, []fieldpath.Path{"genderOther"}, cfg.DependentsOf("gender"))
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		t.Parallel()

		_, err := formstate.DependencyConfigFromYAML([]byte(`just a scalar`))
		require.ErrorIs(t, err, formstate.ErrInvalidConfig)
	})
}
