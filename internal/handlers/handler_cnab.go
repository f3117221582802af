package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
	"github.com/desafiodev/cnab_import_app/internal/dto"
	"github.com/desafiodev/cnab_import_app/internal/middleware"
)

type CnabHandler struct {
	importService portssvc.CnabImportSvcFacade
}

func NewCnabHandler(importService portssvc.CnabImportSvcFacade) *CnabHandler {
	return &CnabHandler{importService: importService}
}

// ImportFile godoc
// @Summary Import a CNAB file
// @Description Uploads a fixed-width CNAB file and imports its transactions, grouped by store
// @Tags cnab
// @Accept mpfd
// @Produce json
// @Param file formData file true "CNAB file"
// @Param ignoreErrors query bool false "Commit successful lines even when some lines failed"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cnab/import [post]
func (h *CnabHandler) ImportFile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.ImportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErrs.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Warn("Failed to open uploaded file", slog.String("filename", fileHeader.Filename), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportFile(c.Request.Context(), file, req.IgnoreErrors)
	if err != nil {
		if errors.Is(err, apperrors.ErrArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("CNAB import failed", slog.String("filename", fileHeader.Filename), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// registerCnabRoutes registers the CNAB import routes.
func registerCnabRoutes(group *gin.RouterGroup, importService portssvc.CnabImportSvcFacade, rateLimit gin.HandlerFunc) {
	handler := NewCnabHandler(importService)

	cnab := group.Group("/cnab")
	cnab.POST("/import", rateLimit, handler.ImportFile)
}
