package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	portsrepo "github.com/desafiodev/cnab_import_app/internal/core/ports/repositories"
	"github.com/desafiodev/cnab_import_app/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for imported transactions.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	clock := d.Time
	return models.Transaction{
		TransactionID: d.TransactionID,
		StoreID:       d.StoreID,
		Type:          int(d.Type),
		OccurredAt: time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(),
			clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC),
		AmountCents: d.Amount.Cents(),
		CPF:         d.CPF.String(),
		CardNumber:  d.Card.String(),
		CreatedAt:   d.CreatedAt,
	}
}

// toDomainTransaction rebuilds the entity through the value-object
// constructors so a row read back is known-valid (the CPF keeps the trusted
// unchecked path, matching how it was imported).
func toDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	txnType, err := domain.NewTransactionType(m.Type)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	amount, err := domain.NewMoneyFromCents(m.AmountCents)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	cpf, err := domain.NewCPFUnchecked(m.CPF)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}
	card, err := domain.NewCardNumber(m.CardNumber)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}

	occurred := m.OccurredAt.UTC()
	return domain.Transaction{
		TransactionID: m.TransactionID,
		StoreID:       m.StoreID,
		Type:          txnType,
		Date:          time.Date(occurred.Year(), occurred.Month(), occurred.Day(), 0, 0, 0, 0, time.UTC),
		Time:          time.Date(0, time.January, 1, occurred.Hour(), occurred.Minute(), occurred.Second(), 0, time.UTC),
		Amount:        amount,
		CPF:           cpf,
		Card:          card,
		CreatedAt:     m.CreatedAt,
	}, nil
}

// SaveTransactionInTx stages a transaction within the given database transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, store_id, type, occurred_at, amount_cents, cpf, card_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.StoreID,
		m.Type,
		m.OccurredAt,
		m.AmountCents,
		m.CPF,
		m.CardNumber,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionsByStoreID retrieves all transactions of a store in import order.
func (r *PgxTransactionRepository) FindTransactionsByStoreID(ctx context.Context, storeID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, store_id, type, occurred_at, amount_cents, cpf, card_number, created_at
		FROM transactions
		WHERE store_id = $1
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for store %s: %w", storeID, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.StoreID,
			&m.Type,
			&m.OccurredAt,
			&m.AmountCents,
			&m.CPF,
			&m.CardNumber,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txn, err := toDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
