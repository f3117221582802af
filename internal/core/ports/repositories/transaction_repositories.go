package repositories

import (
	"context"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for imported transactions.
type TransactionReader interface {
	// FindTransactionsByStoreID retrieves all transactions of a store in
	// input order (creation order).
	FindTransactionsByStoreID(ctx context.Context, storeID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for imported transactions.
type TransactionWriter interface {
	// SaveTransactionInTx stages a transaction within the given database
	// transaction; it only becomes durable when the run commits.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
