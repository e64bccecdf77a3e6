package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExecutor struct{}

func (stubExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (stubExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (stubExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type stubTx struct{ stubExecutor }

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestGetExecutorFallsBack(t *testing.T) {
	fallback := stubExecutor{}

	got := GetExecutor(context.Background(), fallback)
	assert.Equal(t, fallback, got)
}

func TestWithExecutorOverridesFallback(t *testing.T) {
	fallback := stubExecutor{}
	tx := stubTx{}

	ctx := WithExecutor(context.Background(), tx)
	got := GetExecutor(ctx, fallback)
	assert.Equal(t, tx, got)
}

func TestIsInTransaction(t *testing.T) {
	assert.False(t, IsInTransaction(context.Background()))

	// Обычный executor без Commit/Rollback транзакцией не считается
	plain := WithExecutor(context.Background(), stubExecutor{})
	assert.False(t, IsInTransaction(plain))

	tx := WithExecutor(context.Background(), stubTx{})
	assert.True(t, IsInTransaction(tx))
}
