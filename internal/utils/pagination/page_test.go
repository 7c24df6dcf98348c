package pagination_test

import (
	"testing"

	"github.com/jpriva/orders_backend/internal/apperrors"
	"github.com/jpriva/orders_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	p, err := pagination.NewParams(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Offset())

	_, err = pagination.NewParams(-1, 10)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = pagination.NewParams(0, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewParams_CapsSize(t *testing.T) {
	p, err := pagination.NewParams(0, 10_000)
	require.NoError(t, err)
	assert.Equal(t, pagination.MaxPageSize, p.Size)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, pagination.TotalPages(25, 10))
	assert.Equal(t, 1, pagination.TotalPages(10, 10))
	assert.Equal(t, 0, pagination.TotalPages(0, 10))
}

func TestFirstAndLast(t *testing.T) {
	totalPages := pagination.TotalPages(25, 10)

	assert.True(t, pagination.IsFirst(0))
	assert.False(t, pagination.IsFirst(1))
	assert.False(t, pagination.IsLast(1, totalPages))
	assert.True(t, pagination.IsLast(2, totalPages))

	// A page past the end is still "last"; it is served empty, not as an error.
	assert.True(t, pagination.IsLast(7, totalPages))

	// Empty result sets treat page zero as both first and last.
	assert.True(t, pagination.IsLast(0, pagination.TotalPages(0, 10)))
}
