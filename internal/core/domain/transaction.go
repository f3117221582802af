package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one imported CNAB record tied to its owning store.
// Nature and description are derived from Type, never stored.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	StoreID       string          `json:"storeID"`       // FK -> Store.storeID (Not Null)
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`      // Transaction date (midnight UTC)
	Time          time.Time       `json:"time"`      // Time of day on the zero date
	Amount        Money           `json:"amount"`    // Non-negative, minor units
	CPF           CPF             `json:"cpf"`       // Beneficiary's CPF
	Card          CardNumber      `json:"card"`      // Card used in the transaction
	CreatedAt     time.Time       `json:"createdAt"` // When the record was imported
}

// Nature reports whether the transaction is Income or Expense.
func (t Transaction) Nature() TransactionNature {
	return t.Type.Nature()
}

// SignedAmount returns the amount in major units, positive for income and
// negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Nature() == NatureExpense {
		return t.Amount.Decimal().Neg()
	}
	return t.Amount.Decimal()
}
