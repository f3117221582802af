package dto

import (
	"time"

	"github.com/desafiodev/cnab_import_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for an imported transaction.
// Card and CPF are presentational renderings; the amount is signed by nature.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          int             `json:"type"`
	Description   string          `json:"description"` // Human-readable type label
	Nature        string          `json:"nature"`      // INCOME or EXPENSE
	Date          time.Time       `json:"date"`
	Time          string          `json:"time"` // HH:mm:ss
	Amount        decimal.Decimal `json:"amount"`
	SignedAmount  decimal.Decimal `json:"signedAmount"`
	CPF           string          `json:"cpf"`  // ###.###.###-##
	Card          string          `json:"card"` // ****-****-1234
	CreatedAt     time.Time       `json:"createdAt"`
}

// StoreResponse defines the data returned for a store with its transactions.
type StoreResponse struct {
	StoreID      string                `json:"storeID"`
	Name         string                `json:"name"`
	OwnerName    string                `json:"ownerName"`
	Total        decimal.Decimal       `json:"total"` // Signed sum of transaction amounts
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          int(txn.Type),
		Description:   txn.Type.Description(),
		Nature:        string(txn.Nature()),
		Date:          txn.Date,
		Time:          txn.Time.Format("15:04:05"),
		Amount:        txn.Amount.Decimal(),
		SignedAmount:  txn.SignedAmount(),
		CPF:           txn.CPF.Formatted(),
		Card:          txn.Card.Masked(),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToStoreResponse converts a domain.Store with loaded transactions to StoreResponse.
func ToStoreResponse(store *domain.Store) StoreResponse {
	transactions := make([]TransactionResponse, len(store.Transactions))
	for i, txn := range store.Transactions {
		transactions[i] = ToTransactionResponse(&txn)
	}
	return StoreResponse{
		StoreID:      store.StoreID,
		Name:         store.Name,
		OwnerName:    store.OwnerName,
		Total:        store.Balance(),
		Transactions: transactions,
	}
}

// ToStoreResponses converts a slice of domain.Store to []StoreResponse.
func ToStoreResponses(stores []domain.Store) []StoreResponse {
	responses := make([]StoreResponse, len(stores))
	for i := range stores {
		responses[i] = ToStoreResponse(&stores[i])
	}
	return responses
}
