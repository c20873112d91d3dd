package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"mesa-billing/internal/core/domain"
)

func TestErrorCodeMapping(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation})
	fk := &pgconn.PgError{Code: foreignKeyViolation}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))

	assert.ErrorIs(t, mapWriteErr(fk), domain.ErrNotFound)
	assert.Equal(t, unique, mapWriteErr(unique))
	assert.NoError(t, mapWriteErr(nil))
}
