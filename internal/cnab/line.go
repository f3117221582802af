package cnab

import (
	"fmt"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
)

// LineLength is the exact size of a CNAB record, counted in characters
// (runes), not bytes. Store names may carry accented characters.
const LineLength = 81

// Field offsets (0-based, half-open) of the CNAB record layout.
const (
	typeStart  = 0
	typeLength = 1

	dateStart  = 1
	dateLength = 8

	amountStart  = 9
	amountLength = 10

	cpfStart  = 19
	cpfLength = 11

	cardStart  = 30
	cardLength = 12

	timeStart  = 42
	timeLength = 6

	storeOwnerStart  = 48
	storeOwnerLength = 14

	storeNameStart  = 62
	storeNameLength = 19
)

// Line is one decoded CNAB record: primitive field values before any domain
// validation. Immutable once produced.
type Line struct {
	LineNumber  int    // 1-based position in the file
	Type        int    // Transaction type code (1-9, validated later)
	Date        string // Raw yyyyMMdd
	AmountCents int64  // Amount in minor units
	CPF         string // Raw 11 digits, check digits not verified here
	CardNumber  string // 12 characters, digits or '*'
	Time        string // Raw HHmmss
	StoreOwner  string // Trimmed
	StoreName   string // Trimmed
}

// DecodeLine maps an 81-character record onto a Line using the static offset
// table. The first failing field aborts decoding; remaining fields are not
// attempted.
func DecodeLine(text string, lineNumber int) (Line, error) {
	runes := []rune(text)
	if len(runes) != LineLength {
		return Line{}, fmt.Errorf("%w: CNAB line must be exactly %d characters, got %d", apperrors.ErrLength, LineLength, len(runes))
	}

	typeCode, err := parseIntField(runes, typeStart, typeLength, "Type")
	if err != nil {
		return Line{}, err
	}
	amountCents, err := parseIntField(runes, amountStart, amountLength, "Amount")
	if err != nil {
		return Line{}, err
	}

	return Line{
		LineNumber:  lineNumber,
		Type:        int(typeCode),
		Date:        parseTextField(runes, dateStart, dateLength),
		AmountCents: amountCents,
		CPF:         parseTextField(runes, cpfStart, cpfLength),
		CardNumber:  parseTextField(runes, cardStart, cardLength),
		Time:        parseTextField(runes, timeStart, timeLength),
		StoreOwner:  parseTextField(runes, storeOwnerStart, storeOwnerLength),
		StoreName:   parseTextField(runes, storeNameStart, storeNameLength),
	}, nil
}
