package lock

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-billing/internal/core/port"
)

func TestAdvisoryLockerLockUnlock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := advisoryID("billing:u1")
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_lock($1)")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_unlock($1)")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	l := NewAdvisoryLocker(db, 0)
	release, err := l.Lock(context.Background(), "billing:u1")
	require.NoError(t, err)
	require.NoError(t, release(context.Background()))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvisoryLockerLockError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_lock($1)")).
		WillReturnError(errors.New("canceling statement due to user request"))

	_, err = NewAdvisoryLocker(db, 0).Lock(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advisory lock k")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvisoryLockerWaitTimeout(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_lock($1)")).
		WithArgs(advisoryID("busy")).
		WillDelayFor(time.Second).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = NewAdvisoryLocker(db, 50*time.Millisecond).Lock(context.Background(), "busy")
	require.ErrorIs(t, err, port.ErrLockTimeout)
}

func TestAdvisoryIDStable(t *testing.T) {
	assert.Equal(t, advisoryID("billing:u1"), advisoryID("billing:u1"))
	assert.NotEqual(t, advisoryID("billing:u1"), advisoryID("billing:u2"))
}
