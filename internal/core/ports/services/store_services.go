package services

import (
	"context"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
)

// StoreSvcFacade defines the store query operations exposed to handlers.
type StoreSvcFacade interface {
	// ListStoresWithTransactions retrieves all stores ordered by name with
	// their transactions loaded.
	ListStoresWithTransactions(ctx context.Context) ([]domain.Store, error)
}
