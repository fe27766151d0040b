package guard_test

import (
	"errors"
	"sync"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("Courier must be created via NewCourier constructor")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Contains(t, err.Error(), "constructor")
	})
}

func TestConstructorGuard_EmbeddedInEntity(t *testing.T) {
	type tag struct {
		label string
		guard guard.ConstructorGuard
	}
	errTagNotConstructed := errors.New("tag must be created via newTag")

	newTag := func(label string) (tag, error) {
		if label == "" {
			return tag{}, errors.New("label is required")
		}
		return tag{label: label, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_entity_is_valid", func(t *testing.T) {
		v, err := newTag("moto")

		require.NoError(t, err)
		require.NoError(t, v.guard.Validate(errTagNotConstructed))
	})

	t.Run("literal_entity_is_invalid", func(t *testing.T) {
		v := tag{label: "moto"}

		require.ErrorIs(t, v.guard.Validate(errTagNotConstructed), errTagNotConstructed)
	})

	t.Run("copies_keep_the_guard", func(t *testing.T) {
		v, err := newTag("moto")
		require.NoError(t, err)

		cp := v

		require.NoError(t, cp.guard.Validate(errTagNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
