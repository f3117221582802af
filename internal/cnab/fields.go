package cnab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
)

// parseIntField extracts a fixed-width slice and parses it as a non-negative
// base-10 integer. Any non-digit character is a format error naming the field.
func parseIntField(line []rune, start, length int, fieldName string) (int64, error) {
	raw := string(line[start : start+length])
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: field '%s' contains invalid integer value: '%s'", apperrors.ErrFormat, fieldName, raw)
		}
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field '%s' contains invalid integer value: '%s'", apperrors.ErrFormat, fieldName, raw)
	}
	return value, nil
}

// parseTextField extracts a fixed-width slice and trims surrounding
// whitespace. Internal characters and casing are preserved.
func parseTextField(line []rune, start, length int) string {
	return strings.TrimSpace(string(line[start : start+length]))
}
