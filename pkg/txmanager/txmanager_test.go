package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
)

// mockTx implements dbmetrics.TxExecutor without touching a database.
type mockTx struct{}

func (mockTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (mockTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (mockTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (mockTx) Commit() error   { return nil }
func (mockTx) Rollback() error { return nil }

type mockDB struct {
	began int
}

func (m *mockDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	m.began++
	return mockTx{}, nil
}

// layeredConflictError wraps a 40001 driver error the way the storage and
// usecase layers do, sentinel plus cause at each level. The pq error code
// must stay reachable through the whole chain for retries to happen.
func layeredConflictError() error {
	cause := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
	storageErr := fmt.Errorf("%w: GetRows - serialization conflict: %w",
		errors.New("repository: failed to execute query"), cause)
	return fmt.Errorf("%w: failed to load rows: %w",
		errors.New("usecase: internal error"), storageErr)
}

func TestDoSerializable_RetriesLayeredSerializationConflict(t *testing.T) {
	db := &mockDB{}
	manager := NewTransactionManager(db)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return layeredConflictError()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, db.began)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	manager := NewTransactionManager(&mockDB{})

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return layeredConflictError()
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, attempts)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	manager := NewTransactionManager(&mockDB{})
	boom := errors.New("boom")

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("usecase: internal error: %w", boom)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestDo_PassesErrorThrough(t *testing.T) {
	manager := NewTransactionManager(&mockDB{})
	boom := errors.New("boom")

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}
