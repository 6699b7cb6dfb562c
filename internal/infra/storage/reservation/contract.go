package reservation

import (
	"context"
	"database/sql"

	"github.com/hublumi/booking-service/pkg/dbmetrics"
)

// Reutilizamos as interfaces do dbmetrics para acesso ao banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface para iniciar transações
// Suporta *sql.DB e *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
