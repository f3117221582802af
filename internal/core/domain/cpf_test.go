package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/desafiodev/cnab_import_app/internal/core/domain"
)

func TestNewCPF_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare digits", raw: "52998224725", want: "52998224725"},
		{name: "formatted", raw: "529.982.247-25", want: "52998224725"},
		{name: "repeated digit groups", raw: "111.444.777-35", want: "11144477735"},
		{name: "sequential digits", raw: "123.456.789-09", want: "12345678909"},
		{name: "surrounding spaces", raw: " 529.982.247-25 ", want: "52998224725"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpf, err := domain.NewCPF(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cpf.String())
		})
	}
}

func TestNewCPF_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		errMsg string
	}{
		{name: "empty", raw: "", errMsg: "CPF cannot be empty"},
		{name: "whitespace only", raw: "   ", errMsg: "CPF cannot be empty"},
		{name: "too short", raw: "1234567890", errMsg: "exactly 11 digits"},
		{name: "too long", raw: "123456789012", errMsg: "exactly 11 digits"},
		{name: "no digits at all", raw: "abcdefghijk", errMsg: "exactly 11 digits"},
		{name: "all same digits", raw: "111.111.111-11", errMsg: "all same digits"},
		{name: "all zeros", raw: "00000000000", errMsg: "all same digits"},
		{name: "first check digit flipped", raw: "52998224735", errMsg: "invalid CPF"},
		{name: "second check digit flipped", raw: "52998224724", errMsg: "invalid CPF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCPF(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewCPFUnchecked(t *testing.T) {
	// Check digits and the all-same-digits rule are skipped; only length holds.
	cpf, err := domain.NewCPFUnchecked("52998224724")
	require.NoError(t, err)
	assert.Equal(t, "52998224724", cpf.String())

	cpf, err = domain.NewCPFUnchecked("111.111.111-11")
	require.NoError(t, err)
	assert.Equal(t, "11111111111", cpf.String())

	_, err = domain.NewCPFUnchecked("123")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewCPFUnchecked("")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrArgument)
}

func TestCPF_Formatted(t *testing.T) {
	cpf, err := domain.NewCPF("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", cpf.Formatted())
}
