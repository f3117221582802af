package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	portsrepo "github.com/desafiodev/cnab_import_app/internal/core/ports/repositories"
	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
	"github.com/desafiodev/cnab_import_app/internal/middleware"
)

// storeService answers store queries over imported data.
type storeService struct {
	storeRepo portsrepo.StoreReader
	txnRepo   portsrepo.TransactionReader
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo portsrepo.StoreReader, txnRepo portsrepo.TransactionReader) portssvc.StoreSvcFacade {
	return &storeService{
		storeRepo: storeRepo,
		txnRepo:   txnRepo,
	}
}

var _ portssvc.StoreSvcFacade = (*storeService)(nil)

// ListStoresWithTransactions retrieves all stores ordered by name, each with
// its transactions loaded so callers can render balances.
func (s *storeService) ListStoresWithTransactions(ctx context.Context) ([]domain.Store, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		logger.Error("Failed to list stores", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	for i := range stores {
		txns, err := s.txnRepo.FindTransactionsByStoreID(ctx, stores[i].StoreID)
		if err != nil {
			logger.Error("Failed to load store transactions",
				slog.String("store_id", stores[i].StoreID),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load transactions for store %s: %w", stores[i].StoreID, err)
		}
		stores[i].Transactions = txns
	}
	return stores, nil
}
