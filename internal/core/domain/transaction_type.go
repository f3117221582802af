package domain

import (
	"fmt"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
)

// TransactionNature indicates whether a transaction type increases (Income)
// or decreases (Expense) a store's balance.
type TransactionNature string

const (
	NatureIncome  TransactionNature = "INCOME"
	NatureExpense TransactionNature = "EXPENSE"
)

// TransactionType is the closed set of CNAB transaction type codes (1-9).
type TransactionType int

const (
	TypeDebit TransactionType = iota + 1
	TypeBoleto
	TypeFinancing
	TypeCredit
	TypeLoanReceipt
	TypeSales
	TypeTEDReceipt
	TypeDOCReceipt
	TypeRent
)

// NewTransactionType validates a raw type code against the defined set.
func NewTransactionType(code int) (TransactionType, error) {
	t := TransactionType(code)
	if !t.IsValid() {
		return 0, fmt.Errorf("%w: Invalid transaction type: %d", apperrors.ErrValidation, code)
	}
	return t, nil
}

// IsValid reports whether the type is one of the nine defined codes.
func (t TransactionType) IsValid() bool {
	return t >= TypeDebit && t <= TypeRent
}

// Nature maps each defined type to Income or Expense. Callers hold a
// validated type; an undefined code yields the empty nature.
func (t TransactionType) Nature() TransactionNature {
	switch t {
	case TypeBoleto, TypeFinancing, TypeRent:
		return NatureExpense
	case TypeDebit, TypeCredit, TypeLoanReceipt, TypeSales, TypeTEDReceipt, TypeDOCReceipt:
		return NatureIncome
	default:
		return ""
	}
}

// Description returns the human-readable label of the type.
func (t TransactionType) Description() string {
	switch t {
	case TypeDebit:
		return "Debit"
	case TypeBoleto:
		return "Boleto"
	case TypeFinancing:
		return "Financing"
	case TypeCredit:
		return "Credit"
	case TypeLoanReceipt:
		return "Loan Receipt"
	case TypeSales:
		return "Sales"
	case TypeTEDReceipt:
		return "TED Receipt"
	case TypeDOCReceipt:
		return "DOC Receipt"
	case TypeRent:
		return "Rent"
	default:
		return ""
	}
}
