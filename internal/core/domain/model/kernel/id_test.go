package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive values", func(t *testing.T) {
		id, err := kernel.NewID(100)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, int64(100), id.Int64())
		assert.Equal(t, "100", id.String())
	})

	t.Run("should reject zero and negative values", func(t *testing.T) {
		for _, v := range []int64{0, -1, -99} {
			_, err := kernel.NewID(v)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})
}

func TestMustID(t *testing.T) {
	assert.Panics(t, func() { kernel.MustID(0) })
	assert.True(t, kernel.MustID(1).IsEqual(kernel.MustID(1)))
	assert.False(t, kernel.MustID(1).IsEqual(kernel.MustID(2)))
}

func TestID_Validate(t *testing.T) {
	var zero kernel.ID

	assert.Equal(t, kernel.ErrIDIsNotConstructed, zero.Validate())
}
