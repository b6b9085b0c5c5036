package admin

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов.
// Поддерживает *sql.DB и *sql.Tx.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
