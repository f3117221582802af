package cnab_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	"github.com/desafiodev/cnab_import_app/internal/cnab"
)

func TestNewDecoder_NilStream(t *testing.T) {
	_, err := cnab.NewDecoder(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrArgument)
}

func TestDecoder_EmptyStream(t *testing.T) {
	decoder, err := cnab.NewDecoder(strings.NewReader(""))
	require.NoError(t, err)

	assert.False(t, decoder.Scan())
	assert.NoError(t, decoder.Err())
}

func TestDecoder_WhitespaceOnlyStream(t *testing.T) {
	decoder, err := cnab.NewDecoder(strings.NewReader("   \n\t\n\r\n"))
	require.NoError(t, err)

	assert.False(t, decoder.Scan())
	assert.NoError(t, decoder.Err())
}

func TestDecoder_ReadsRecordsInOrder(t *testing.T) {
	input := strings.Join([]string{
		encodeLine(3, "20190301", 14200, "09620676017", "4753****3153", "153453", "JOÃO MACEDO", "BAR DO JOÃO"),
		encodeLine(5, "20190301", 13200, "55641815673", "3123****7687", "145607", "MARIA JOSEFINA", "LOJA DO Ó - MATRIZ"),
		encodeLine(2, "20190301", 11200, "09620676017", "4753****3153", "153453", "JOÃO MACEDO", "BAR DO JOÃO"),
	}, "\n")

	decoder, err := cnab.NewDecoder(strings.NewReader(input))
	require.NoError(t, err)

	var lines []cnab.Line
	for decoder.Scan() {
		lines = append(lines, decoder.Line())
	}
	require.NoError(t, decoder.Err())
	require.Len(t, lines, 3)

	assert.Equal(t, 1, lines[0].LineNumber)
	assert.Equal(t, 2, lines[1].LineNumber)
	assert.Equal(t, 3, lines[2].LineNumber)
	assert.Equal(t, "BAR DO JOÃO", lines[0].StoreName)
	assert.Equal(t, "LOJA DO Ó - MATRIZ", lines[1].StoreName)
	assert.Equal(t, 2, lines[2].Type)
}

func TestDecoder_BlankLinesAdvanceTheCounter(t *testing.T) {
	input := strings.Join([]string{
		"",
		encodeLine(1, "20190301", 10000, "09620676017", "1234****7890", "120000", "OWNER", "STORE"),
		"   ",
		encodeLine(4, "20190302", 20000, "09620676017", "1234****7890", "130000", "OWNER", "STORE"),
	}, "\n")

	decoder, err := cnab.NewDecoder(strings.NewReader(input))
	require.NoError(t, err)

	require.True(t, decoder.Scan())
	assert.Equal(t, 2, decoder.Line().LineNumber)

	require.True(t, decoder.Scan())
	assert.Equal(t, 4, decoder.Line().LineNumber)

	assert.False(t, decoder.Scan())
	assert.NoError(t, decoder.Err())
}

func TestDecoder_FailureCarriesLineNumber(t *testing.T) {
	input := strings.Join([]string{
		encodeLine(1, "20190301", 10000, "09620676017", "1234****7890", "120000", "OWNER", "STORE"),
		"too short",
		encodeLine(4, "20190302", 20000, "09620676017", "1234****7890", "130000", "OWNER", "STORE"),
	}, "\n")

	decoder, err := cnab.NewDecoder(strings.NewReader(input))
	require.NoError(t, err)

	require.True(t, decoder.Scan())
	assert.False(t, decoder.Scan())

	err = decoder.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLength)
	assert.Contains(t, err.Error(), "error decoding line 2")

	// The decoder stays exhausted after a failure.
	assert.False(t, decoder.Scan())
	assert.ErrorIs(t, decoder.Err(), apperrors.ErrLength)
}
