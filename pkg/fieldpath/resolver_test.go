package fieldpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins over everything", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver(
			fieldpath.WithResolverFunc(func(fieldpath.Hint) fieldpath.Path { return "custom.path" }),
		)

		p, err := r.Resolve(fieldpath.Hint{Path: "declared.path", ID: "something_else"})
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path("declared.path"), p)
	})

	t.Run("custom resolver consulted before registry", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver(
			fieldpath.WithKnownPaths("userId"),
			fieldpath.WithResolverFunc(func(h fieldpath.Hint) fieldpath.Path {
				if h.ID == "userId" {
					return "account.userId"
				}
				return ""
			}),
		)

		p, err := r.Resolve(fieldpath.Hint{ID: "userId"})
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path("account.userId"), p)
	})

	t.Run("registry lookup by camelCase accessor", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver(
			fieldpath.WithKnownPaths("addresses.billingAddress.street"),
		)

		p, err := r.Resolve(fieldpath.Hint{ID: "addressesBillingAddressStreet"})
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path("addresses.billingAddress.street"), p)
	})

	t.Run("falls back to name when id is empty", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver(fieldpath.WithKnownPaths("userId"))

		p, err := r.Resolve(fieldpath.Hint{Name: "userId"})
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path("userId"), p)
	})

	t.Run("underscore fallback conversion", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver()

		p, err := r.Resolve(fieldpath.Hint{ID: "billing_address_street"})
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path("billing.address.street"), p)
	})

	t.Run("unknown camelCase id stays unresolved", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver()

		_, err := r.Resolve(fieldpath.Hint{ID: "somethingUnknown"})
		assert.ErrorIs(t, err, fieldpath.ErrUnresolvedHint)
	})

	t.Run("blank hint", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver()

		_, err := r.Resolve(fieldpath.Hint{})
		assert.ErrorIs(t, err, fieldpath.ErrEmptyHint)
	})

	t.Run("custom resolver returning zero path continues the chain", func(t *testing.T) {
		t.Parallel()
		r := fieldpath.NewResolver(
			fieldpath.WithKnownPaths("userId"),
			fieldpath.WithResolverFunc(func(fieldpath.Hint) fieldpath.Path { return "" }),
		)

		p, err := r.Resolve(fieldpath.Hint{ID: "userId"})
		require.NoError(t, err)
		assert.Equal(t, fieldpath.Path("userId"), p)
	})
}

func TestResolver_Register(t *testing.T) {
	t.Parallel()

	r := fieldpath.NewResolver()
	r.Register("userId", fieldpath.Root, "")

	p, err := r.Resolve(fieldpath.Hint{ID: "userId"})
	require.NoError(t, err)
	assert.Equal(t, fieldpath.Path("userId"), p)

	// Root and zero paths must never enter the registry.
	_, err = r.Resolve(fieldpath.Hint{ID: fieldpath.Root.Accessor()})
	assert.Error(t, err)
}

func TestResolver_Strict(t *testing.T) {
	t.Parallel()

	assert.False(t, fieldpath.NewResolver().Strict())
	assert.True(t, fieldpath.NewResolver(fieldpath.WithStrictResolution()).Strict())
}
