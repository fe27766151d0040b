package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("courierID", "c-1")

		assert.Equal(t, "courierID", err.ParamName)
		assert.Equal(t, "c-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: c-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("snapshot row missing")
		err := errs.NewObjectNotFoundErrorWithCause("state", "MM_APP_STATE_V2", cause)

		assert.Equal(t,
			"object not found: param is: state, ID is: MM_APP_STATE_V2 (cause: snapshot row missing)",
			err.Error())
		assert.Equal(t, cause, err.Cause)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("dayKey")

		assert.Equal(t, "value is invalid: dayKey", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("code", errors.New("5 digits"))

		assert.Equal(t, "value is invalid: code (cause: 5 digits)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("entitlement", 7, 0, 2)

		assert.Equal(t, 7, err.Value)
		assert.Equal(t, "value is invalid: 7 is entitlement, min value is 0, max value is 2", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("entitlement", -1, 0, 2, errors.New("negative"))

		assert.Equal(t,
			"value is invalid: -1 is entitlement, min value is 0, max value is 2 (cause: negative)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "Motoboy\n01", 1, 40)

		assert.Contains(t, err.Error(), "Motoboy 01")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("courierID", errors.New("blank"))

		assert.Equal(t, "value is required: courierID (cause: blank)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("code"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 3, 0, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)

	joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("tag"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
}
