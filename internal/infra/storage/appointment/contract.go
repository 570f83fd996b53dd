package appointment

import (
	"context"
	"database/sql"

	"github.com/vialibre/dispatch-service/pkg/dbmetrics"
)

// Database interfaces re-used from dbmetrics so repositories work over both
// *sql.DB and the metric-collecting wrapper
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
