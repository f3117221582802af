package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/desafiodev/cnab_import_app/internal/core/ports/services"
	"github.com/desafiodev/cnab_import_app/internal/dto"
	"github.com/desafiodev/cnab_import_app/internal/middleware"
)

type StoreHandler struct {
	storeService portssvc.StoreSvcFacade
}

func NewStoreHandler(storeService portssvc.StoreSvcFacade) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// ListStores godoc
// @Summary List stores with their transactions
// @Description Retrieves all stores ordered by name, each with its imported transactions and signed total balance
// @Tags stores
// @Produce json
// @Success 200 {array} dto.StoreResponse
// @Failure 500 {object} map[string]string
// @Router /stores [get]
func (h *StoreHandler) ListStores(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	stores, err := h.storeService.ListStoresWithTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list stores", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreResponses(stores))
}

// registerStoreRoutes registers the store query routes.
func registerStoreRoutes(group *gin.RouterGroup, storeService portssvc.StoreSvcFacade) {
	handler := NewStoreHandler(storeService)

	stores := group.Group("/stores")
	stores.GET("", handler.ListStores)
}
