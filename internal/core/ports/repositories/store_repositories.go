package repositories

import (
	"context"
	"time"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// StoreReader defines read operations for store data outside an import run.
type StoreReader interface {
	// ListStores retrieves all stores ordered by name.
	ListStores(ctx context.Context) ([]domain.Store, error)
}

// StoreWriter defines write operations for store data. Writes during an
// import run are scoped to the run's database transaction so that store
// creation is atomic with the transaction appends.
type StoreWriter interface {
	// FindStoreByNameInTx resolves a store by its exact name within the given
	// transaction. Returns apperrors.ErrNotFound when absent.
	FindStoreByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Store, error)

	// SaveStoreInTx stages a new store within the given transaction.
	SaveStoreInTx(ctx context.Context, tx pgx.Tx, store domain.Store) error

	// UpdateStoreOwnerInTx updates a store's owner name within the given
	// transaction (last-write-wins).
	UpdateStoreOwnerInTx(ctx context.Context, tx pgx.Tx, storeID string, ownerName string, now time.Time) error
}

// StoreRepositoryFacade combines all store-related repository interfaces.
type StoreRepositoryFacade interface {
	StoreReader
	StoreWriter
}

// StoreRepositoryWithTx extends StoreRepositoryFacade with transaction capabilities.
type StoreRepositoryWithTx interface {
	StoreRepositoryFacade
	TransactionManager
}
