package domain

import (
	"fmt"
	"strings"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
)

const cpfLength = 11

// CPF is a Brazilian individual taxpayer identifier (11 digits, the last two
// being check digits). The zero value is invalid; instances are only produced
// by NewCPF or NewCPFUnchecked, so a CPF in memory is always 11 ASCII digits.
type CPF struct {
	value string
}

// NewCPF normalizes and fully validates a CPF: formatting characters are
// stripped, the length must be exactly 11 digits, sequences of a single
// repeated digit are rejected, and both check digits are verified.
func NewCPF(raw string) (CPF, error) {
	cleaned, err := normalizeCPF(raw)
	if err != nil {
		return CPF{}, err
	}
	if allSameDigits(cleaned) {
		return CPF{}, fmt.Errorf("%w: CPF cannot have all same digits", apperrors.ErrValidation)
	}
	if !validCheckDigits(cleaned) {
		return CPF{}, fmt.Errorf("%w: invalid CPF", apperrors.ErrValidation)
	}
	return CPF{value: cleaned}, nil
}

// NewCPFUnchecked normalizes and enforces the 11-digit length but skips the
// check-digit verification. Meant for data from already-persisted or otherwise
// trusted sources that must not be re-validated.
func NewCPFUnchecked(raw string) (CPF, error) {
	cleaned, err := normalizeCPF(raw)
	if err != nil {
		return CPF{}, err
	}
	return CPF{value: cleaned}, nil
}

// String returns the bare 11-digit value.
func (c CPF) String() string {
	return c.value
}

// Formatted renders the CPF as ###.###.###-##.
func (c CPF) Formatted() string {
	return fmt.Sprintf("%s.%s.%s-%s", c.value[0:3], c.value[3:6], c.value[6:9], c.value[9:11])
}

func normalizeCPF(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: CPF cannot be empty", apperrors.ErrArgument)
	}
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if len(cleaned) != cpfLength {
		return "", fmt.Errorf("%w: CPF must have exactly %d digits", apperrors.ErrValidation, cpfLength)
	}
	return cleaned, nil
}

func allSameDigits(cpf string) bool {
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			return false
		}
	}
	return true
}

// validCheckDigits runs the standard CPF verification algorithm: each check
// digit is 0 when the weighted sum mod 11 is below 2, and 11 minus the
// remainder otherwise.
func validCheckDigits(cpf string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	remainder := sum % 11
	firstDigit := 0
	if remainder >= 2 {
		firstDigit = 11 - remainder
	}
	if firstDigit != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	remainder = sum % 11
	secondDigit := 0
	if remainder >= 2 {
		secondDigit = 11 - remainder
	}
	return secondDigit == int(cpf[10]-'0')
}
