package services

import (
	"context"
	"io"

	"github.com/desafiodev/cnab_import_app/internal/dto"
)

// CnabImportSvcFacade defines the CNAB file import operations exposed to handlers.
type CnabImportSvcFacade interface {
	// ImportFile decodes and imports a CNAB stream. Per-line and per-group
	// failures are reported inside the returned ImportResult; only a nil or
	// unreadable stream yields a top-level error.
	ImportFile(ctx context.Context, file io.Reader, ignoreErrors bool) (*dto.ImportResult, error)
}
