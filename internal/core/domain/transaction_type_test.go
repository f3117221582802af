package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/desafiodev/cnab_import_app/internal/core/domain"
)

func TestNewTransactionType_DefinedCodes(t *testing.T) {
	tests := []struct {
		code        int
		description string
		nature      domain.TransactionNature
	}{
		{code: 1, description: "Debit", nature: domain.NatureIncome},
		{code: 2, description: "Boleto", nature: domain.NatureExpense},
		{code: 3, description: "Financing", nature: domain.NatureExpense},
		{code: 4, description: "Credit", nature: domain.NatureIncome},
		{code: 5, description: "Loan Receipt", nature: domain.NatureIncome},
		{code: 6, description: "Sales", nature: domain.NatureIncome},
		{code: 7, description: "TED Receipt", nature: domain.NatureIncome},
		{code: 8, description: "DOC Receipt", nature: domain.NatureIncome},
		{code: 9, description: "Rent", nature: domain.NatureExpense},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			txnType, err := domain.NewTransactionType(tt.code)
			require.NoError(t, err)
			assert.True(t, txnType.IsValid())
			assert.Equal(t, tt.description, txnType.Description())
			assert.Equal(t, tt.nature, txnType.Nature())
		})
	}
}

func TestNewTransactionType_UndefinedCodes(t *testing.T) {
	for _, code := range []int{-1, 0, 10, 99} {
		_, err := domain.NewTransactionType(code)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "Invalid transaction type")
	}
}
