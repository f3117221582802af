package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	portsrepo "github.com/desafiodev/cnab_import_app/internal/core/ports/repositories"
	"github.com/desafiodev/cnab_import_app/internal/models"
)

type PgxStoreRepository struct {
	BaseRepository
}

// NewStoreRepository creates a new repository for store data.
func NewStoreRepository(pool *pgxpool.Pool) portsrepo.StoreRepositoryWithTx {
	return &PgxStoreRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxStoreRepository implements portsrepo.StoreRepositoryWithTx
var _ portsrepo.StoreRepositoryWithTx = (*PgxStoreRepository)(nil)

func toModelStore(d domain.Store) models.Store {
	return models.Store{
		StoreID:       d.StoreID,
		Name:          d.Name,
		OwnerName:     d.OwnerName,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

func toDomainStore(m models.Store) domain.Store {
	return domain.Store{
		StoreID:       m.StoreID,
		Name:          m.Name,
		OwnerName:     m.OwnerName,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ListStores retrieves all stores ordered by name.
func (r *PgxStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	query := `
		SELECT store_id, name, owner_name, created_at, last_updated_at
		FROM stores
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		var m models.Store
		if err := rows.Scan(&m.StoreID, &m.Name, &m.OwnerName, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store row: %w", err)
		}
		stores = append(stores, toDomainStore(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store rows: %w", err)
	}
	return stores, nil
}

// FindStoreByNameInTx retrieves a store by its exact name within a transaction.
func (r *PgxStoreRepository) FindStoreByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.Store, error) {
	query := `
		SELECT store_id, name, owner_name, created_at, last_updated_at
		FROM stores
		WHERE name = $1;
	`
	var m models.Store
	err := tx.QueryRow(ctx, query, name).Scan(&m.StoreID, &m.Name, &m.OwnerName, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store by name %q: %w", name, err)
	}
	store := toDomainStore(m)
	return &store, nil
}

// SaveStoreInTx stages a new store within a transaction.
func (r *PgxStoreRepository) SaveStoreInTx(ctx context.Context, tx pgx.Tx, store domain.Store) error {
	m := toModelStore(store)

	query := `
		INSERT INTO stores (store_id, name, owner_name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query, m.StoreID, m.Name, m.OwnerName, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: store with name %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save store %s: %w", m.StoreID, err)
	}
	return nil
}

// UpdateStoreOwnerInTx updates a store's owner name within a transaction.
func (r *PgxStoreRepository) UpdateStoreOwnerInTx(ctx context.Context, tx pgx.Tx, storeID string, ownerName string, now time.Time) error {
	query := `
		UPDATE stores
		SET owner_name = $2, last_updated_at = $3
		WHERE store_id = $1;
	`
	tag, err := tx.Exec(ctx, query, storeID, ownerName, now)
	if err != nil {
		return fmt.Errorf("failed to update owner of store %s: %w", storeID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: store %s", apperrors.ErrNotFound, storeID)
	}
	return nil
}
