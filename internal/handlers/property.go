// handlers/property_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homevalue-aggregator/internal/errors"
	"homevalue-aggregator/internal/services"
)

type PropertyHandler struct {
	aggregator services.Aggregator
}

func NewPropertyHandler(aggregator services.Aggregator) *PropertyHandler {
	return &PropertyHandler{aggregator: aggregator}
}

// GetPropertyDetails godoc
// @Summary Get aggregated property details
// @Description Fetch property details for an address from all configured AVM providers. A failed provider is reported inline with an error message instead of failing the request.
// @Tags Properties
// @Accept json
// @Produce json
// @Param address query string true "Full property address"
// @Success 200 {object} models.AggregatedResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /properties/details [get]
func (h *PropertyHandler) GetPropertyDetails(c *gin.Context) {
	address := c.Query("address")

	result, err := h.aggregator.FetchAll(c.Request.Context(), address)
	if err != nil {
		appErr := errors.MapError(err)
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.UserMessage})
		return
	}
	c.JSON(http.StatusOK, result)
}
