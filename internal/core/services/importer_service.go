package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/desafiodev/cnab_import_app/internal/cnab"
	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	portsrepo "github.com/desafiodev/cnab_import_app/internal/core/ports/repositories"
	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
	"github.com/desafiodev/cnab_import_app/internal/dto"
	"github.com/desafiodev/cnab_import_app/internal/middleware"
)

const (
	cnabDateLayout = "20060102"
	cnabTimeLayout = "150405"
)

const emptyFileMessage = "File is empty or contains no valid data"

// cnabImportService orchestrates a CNAB import run: decode the whole file,
// group lines by store, resolve or create each store, build transaction
// entities, and decide once whether the staged writes commit.
type cnabImportService struct {
	storeRepo portsrepo.StoreRepositoryWithTx
	txnRepo   portsrepo.TransactionWriter
}

// NewCnabImportService creates a new CNAB import service.
func NewCnabImportService(storeRepo portsrepo.StoreRepositoryWithTx, txnRepo portsrepo.TransactionWriter) portssvc.CnabImportSvcFacade {
	return &cnabImportService{
		storeRepo: storeRepo,
		txnRepo:   txnRepo,
	}
}

var _ portssvc.CnabImportSvcFacade = (*cnabImportService)(nil)

// storeGroup holds the lines of one store in input order.
type storeGroup struct {
	name  string
	lines []cnab.Line
}

// groupLinesByStore partitions lines by store name, preserving first-seen
// group order. A map would leave the output at the mercy of hash iteration.
func groupLinesByStore(lines []cnab.Line) []*storeGroup {
	index := make(map[string]*storeGroup)
	groups := make([]*storeGroup, 0)
	for _, line := range lines {
		group, ok := index[line.StoreName]
		if !ok {
			group = &storeGroup{name: line.StoreName}
			index[line.StoreName] = group
			groups = append(groups, group)
		}
		group.lines = append(group.lines, line)
	}
	return groups
}

// ImportFile runs a single import pass. Line- and group-scoped failures are
// collected inside the result; only a nil stream or a cancelled context is
// reported as a top-level error. The commit policy is strict: the run commits
// only when at least one line succeeded and either no line failed or the
// caller opted into error tolerance.
func (s *cnabImportService) ImportFile(ctx context.Context, file io.Reader, ignoreErrors bool) (*dto.ImportResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	decoder, err := cnab.NewDecoder(file)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResult{Errors: []string{}}

	// Grouping needs to see every line before store resolution can start, so
	// the lazy sequence is materialized here.
	var lines []cnab.Line
	for decoder.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, decoder.Line())
		result.TotalLines++
	}
	if err := decoder.Err(); err != nil {
		logger.Error("CNAB decode phase failed", slog.String("error", err.Error()))
		result.Errors = append(result.Errors, fmt.Sprintf("Critical error during import: %v", err))
		result.InvalidLines = result.TotalLines - result.ValidLines
		return result, nil
	}

	if result.TotalLines == 0 {
		result.Errors = append(result.Errors, emptyFileMessage)
		return result, nil
	}

	// Every write of the run, store creation included, is staged in this one
	// database transaction; commit or rollback happens exactly once below.
	tx, err := s.storeRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin import transaction", slog.String("error", err.Error()))
		result.Errors = append(result.Errors, fmt.Sprintf("Critical error during import: %v", err))
		result.InvalidLines = result.TotalLines
		return result, nil
	}
	defer func() {
		// No-op once the run has committed.
		_ = s.storeRepo.Rollback(ctx, tx)
	}()

	for _, group := range groupLinesByStore(lines) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		store, err := s.resolveStore(ctx, tx, group)
		if err != nil {
			logger.Warn("Store resolution failed",
				slog.String("store", group.name),
				slog.String("error", err.Error()))
			result.Errors = append(result.Errors, fmt.Sprintf("Store '%s': %v", group.name, err))
			result.InvalidLines += len(group.lines)
			continue
		}

		for _, line := range group.lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			txn, err := buildTransaction(line, store)
			if err == nil {
				err = s.txnRepo.SaveTransactionInTx(ctx, tx, txn)
			}
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Line '%d': Failed to create transaction - %v", line.LineNumber, err))
				result.InvalidLines++
				continue
			}
			result.ValidLines++
		}
	}

	if result.ValidLines > 0 && (result.InvalidLines == 0 || ignoreErrors) {
		if err := s.storeRepo.Commit(ctx, tx); err != nil {
			logger.Error("Import commit failed", slog.String("error", err.Error()))
			result.Errors = append(result.Errors, fmt.Sprintf("Critical error during import: %v", err))
			return result, nil
		}
		result.IsSuccess = true
	}

	logger.Info("CNAB import finished",
		slog.Int("total_lines", result.TotalLines),
		slog.Int("valid_lines", result.ValidLines),
		slog.Int("invalid_lines", result.InvalidLines),
		slog.Bool("committed", result.IsSuccess))
	return result, nil
}

// resolveStore finds the group's store by exact name, creating it when absent
// with the owner taken from the group's first line. A differing owner name on
// an existing store is refreshed in place (last-write-wins).
func (s *cnabImportService) resolveStore(ctx context.Context, tx pgx.Tx, group *storeGroup) (*domain.Store, error) {
	owner := group.lines[0].StoreOwner

	store, err := s.storeRepo.FindStoreByNameInTx(ctx, tx, group.name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		now := time.Now().UTC()
		created := domain.Store{
			StoreID:       uuid.NewString(),
			Name:          group.name,
			OwnerName:     owner,
			CreatedAt:     now,
			LastUpdatedAt: now,
		}
		if err := s.storeRepo.SaveStoreInTx(ctx, tx, created); err != nil {
			return nil, err
		}
		return &created, nil
	}

	if store.OwnerName != owner {
		now := time.Now().UTC()
		if err := s.storeRepo.UpdateStoreOwnerInTx(ctx, tx, store.StoreID, owner, now); err != nil {
			return nil, err
		}
		store.OwnerName = owner
		store.LastUpdatedAt = now
	}
	return store, nil
}

// buildTransaction validates a decoded line and constructs the transaction
// entity. The CPF comes from an import feed and is taken via the unchecked
// constructor; the card number goes through full validation.
func buildTransaction(line cnab.Line, store *domain.Store) (domain.Transaction, error) {
	txnType, err := domain.NewTransactionType(line.Type)
	if err != nil {
		return domain.Transaction{}, err
	}

	date, err := time.ParseInLocation(cnabDateLayout, line.Date, time.UTC)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: field 'Date' has invalid value '%s', expected yyyyMMdd", apperrors.ErrFormat, line.Date)
	}
	clock, err := time.ParseInLocation(cnabTimeLayout, line.Time, time.UTC)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: field 'Time' has invalid value '%s', expected HHmmss", apperrors.ErrFormat, line.Time)
	}

	amount, err := domain.NewMoneyFromCents(line.AmountCents)
	if err != nil {
		return domain.Transaction{}, err
	}
	cpf, err := domain.NewCPFUnchecked(line.CPF)
	if err != nil {
		return domain.Transaction{}, err
	}
	card, err := domain.NewCardNumber(line.CardNumber)
	if err != nil {
		return domain.Transaction{}, err
	}

	return domain.Transaction{
		TransactionID: uuid.NewString(),
		StoreID:       store.StoreID,
		Type:          txnType,
		Date:          date,
		Time:          clock,
		Amount:        amount,
		CPF:           cpf,
		Card:          card,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
