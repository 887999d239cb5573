package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pesagem/internal/service"
)

// ReferenciaHandler serves one reference list (produtos, origens or
// destinos); the router mounts one instance per list.
type ReferenciaHandler struct {
	svc service.ReferenciaService
}

// NewReferenciaHandler creates a handler over one reference-list service.
func NewReferenciaHandler(svc service.ReferenciaService) *ReferenciaHandler {
	return &ReferenciaHandler{svc: svc}
}

// ReferenciaRequest is the create/update payload for a reference-list entry.
type ReferenciaRequest struct {
	Nome string `json:"nome" validate:"required"`
}

// List godoc
// @Summary List reference entries
// @Tags referencias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Referencia
// @Router /api/produtos [get]
func (h *ReferenciaHandler) List(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	refs, err := h.svc.List(c.Request().Context(), ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, refs)
}

// Create godoc
// @Summary Create a reference entry (master only)
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param referencia body ReferenciaRequest true "Entry"
// @Success 201 {object} model.Referencia
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/produtos [post]
func (h *ReferenciaHandler) Create(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req ReferenciaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ref, err := h.svc.Create(c.Request().Context(), req.Nome, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, ref)
}

// Update godoc
// @Summary Rename a reference entry (master only)
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param referencia body ReferenciaRequest true "Entry"
// @Success 200 {object} model.Referencia
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/produtos/{id} [put]
func (h *ReferenciaHandler) Update(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req ReferenciaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ref, err := h.svc.Update(c.Request().Context(), id, req.Nome, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, ref)
}

// Delete godoc
// @Summary Delete a reference entry (master only, no cascade)
// @Tags referencias
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/produtos/{id} [delete]
func (h *ReferenciaHandler) Delete(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id, ident); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
