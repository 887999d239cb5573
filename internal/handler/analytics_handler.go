package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pesagem/internal/service"
)

// AnalyticsHandler serves the dashboard chart aggregates.
type AnalyticsHandler struct {
	svc service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// PesoPorMotorista godoc
// @Summary Total weight hauled per driver
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PesoPorMotorista
// @Router /api/analytics/peso-por-motorista [get]
func (h *AnalyticsHandler) PesoPorMotorista(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	rows, err := h.svc.PesoPorMotorista(c.Request().Context(), ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ValorPorProduto godoc
// @Summary Total freight value per product
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ValorPorProduto
// @Router /api/analytics/valor-por-produto [get]
func (h *AnalyticsHandler) ValorPorProduto(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	rows, err := h.svc.ValorPorProduto(c.Request().Context(), ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
