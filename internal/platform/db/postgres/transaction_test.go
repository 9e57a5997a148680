package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateStatusSQL = `UPDATE time_off_requests SET status = $1 WHERE id = $2`

func newMockManager(t *testing.T) (pgxmock.PgxPoolIface, *TransactionManager) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewTransactionManager(mock)
}

func execStatus(ctx context.Context, fallback Queryer, status string) error {
	_, err := QueryerFromContext(ctx, fallback).Exec(ctx, updateStatusSQL, status, "request-1")
	return err
}

func TestTransactionManager_ReadWriteCommitsStatement(t *testing.T) {
	t.Parallel()

	mock, tm := newMockManager(t)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec(updateStatusSQL).WithArgs("approved", "request-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		_, ok := txFromContext(ctx)
		assert.True(t, ok, "transaction injected into context")
		return execStatus(ctx, nil, "approved")
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		mode pgx.TxAccessMode
		run  func(*TransactionManager, context.Context, func(context.Context) error) error
	}{
		{name: "read only", mode: pgx.ReadOnly, run: (*TransactionManager).WithinReadOnly},
		{name: "read write", mode: pgx.ReadWrite, run: (*TransactionManager).WithinReadWrite},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, tm := newMockManager(t)
			mock.ExpectBeginTx(pgx.TxOptions{AccessMode: tc.mode})
			mock.ExpectRollback()

			notFound := errors.New("request not found")
			err := tc.run(tm, context.Background(), func(context.Context) error {
				return notFound
			})
			assert.ErrorIs(t, err, notFound)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	t.Parallel()

	mock, tm := newMockManager(t)
	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite}).WillReturnError(errors.New("connection refused"))

	called := false
	err := tm.WithinReadWrite(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called, "body must not run when begin fails")
}

func TestTransactionManager_ReadInsideReadWriteSharesTx(t *testing.T) {
	t.Parallel()

	mock, tm := newMockManager(t)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec(updateStatusSQL).WithArgs("denied", "request-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		outer, _ := txFromContext(ctx)
		return tm.WithinReadOnly(ctx, func(inner context.Context) error {
			tx, ok := txFromContext(inner)
			assert.True(t, ok)
			assert.Equal(t, outer, tx, "nested call reuses the outer transaction")
			return execStatus(inner, nil, "denied")
		})
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_ReadWriteInsideReadOnly(t *testing.T) {
	t.Parallel()

	mock, tm := newMockManager(t)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectRollback()

	called := false
	err := tm.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		return tm.WithinReadWrite(ctx, func(context.Context) error {
			called = true
			return nil
		})
	})
	assert.ErrorIs(t, err, ErrReadOnlyTransaction)
	assert.False(t, called, "read-write body must not run inside read-only transaction")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryerFromContext_FallsBackToPool(t *testing.T) {
	t.Parallel()

	mock, _ := newMockManager(t)
	mock.ExpectExec(updateStatusSQL).WithArgs("approved", "request-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, execStatus(context.Background(), mock, "approved"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_NilManagerRunsDirectly(t *testing.T) {
	t.Parallel()

	var tm *TransactionManager
	called := false
	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		called = true
		_, ok := txFromContext(ctx)
		assert.False(t, ok, "no transaction in context")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, NewTransactionManager(nil))
}
