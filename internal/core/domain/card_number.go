package domain

import (
	"fmt"
	"strings"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
)

const (
	cardNumberLength = 12
	cardMaskRune     = '*'
)

// CardNumber is the 12-character card identifier from a CNAB record. Each
// character is either a digit or the '*' mask placeholder as delivered by the
// acquirer; the stored value is never re-derived from a masked rendering.
type CardNumber struct {
	value string
}

// NewCardNumber strips formatting punctuation and spaces, then requires
// exactly 12 characters, each a digit or '*'.
func NewCardNumber(raw string) (CardNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return CardNumber{}, fmt.Errorf("%w: card number cannot be empty", apperrors.ErrArgument)
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.':
			return -1
		}
		return r
	}, raw)

	if len(cleaned) != cardNumberLength {
		return CardNumber{}, fmt.Errorf("%w: card number must have exactly %d characters (digits or '*')", apperrors.ErrValidation, cardNumberLength)
	}
	for _, r := range cleaned {
		if (r < '0' || r > '9') && r != cardMaskRune {
			return CardNumber{}, fmt.Errorf("%w: card number must have exactly %d characters (digits or '*')", apperrors.ErrValidation, cardNumberLength)
		}
	}
	return CardNumber{value: cleaned}, nil
}

// String returns the raw 12-character value.
func (c CardNumber) String() string {
	return c.value
}

// Masked exposes only the last 4 characters (e.g. ****-****-1234).
func (c CardNumber) Masked() string {
	return "****-****-" + c.value[8:12]
}

// Grouped renders all 12 characters in dash-separated 4-4-4 blocks.
func (c CardNumber) Grouped() string {
	return fmt.Sprintf("%s-%s-%s", c.value[0:4], c.value[4:8], c.value[8:12])
}
