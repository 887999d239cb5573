package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pesagem/internal/service"
)

// LancamentoHandler handles the ticket CRUD endpoints. Create and update are
// multipart forms because of the optional invoice upload (field "arquivoNf").
type LancamentoHandler struct {
	svc service.LancamentoService
}

// NewLancamentoHandler creates a new lancamento handler.
func NewLancamentoHandler(svc service.LancamentoService) *LancamentoHandler {
	return &LancamentoHandler{svc: svc}
}

// List godoc
// @Summary List lancamentos visible to the caller
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Lancamento
// @Router /lancamentos [get]
func (h *LancamentoHandler) List(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	ls, err := h.svc.List(c.Request().Context(), ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, ls)
}

// Get godoc
// @Summary Get one lancamento
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lancamento ID"
// @Success 200 {object} model.Lancamento
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lancamentos/{id} [get]
func (h *LancamentoHandler) Get(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	l, err := h.svc.Get(c.Request().Context(), id, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, l)
}

// Create godoc
// @Summary Create a lancamento
// @Tags lancamentos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param arquivoNf formData file false "Invoice file"
// @Success 201 {object} model.Lancamento
// @Failure 403 {object} errors.ErrorResponse
// @Router /lancamentos [post]
func (h *LancamentoHandler) Create(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	in := bindLancamentoForm(c)
	file := optionalFile(c, "arquivoNf")

	l, err := h.svc.Create(c.Request().Context(), in, file, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, l)
}

// Update godoc
// @Summary Overwrite a lancamento
// @Tags lancamentos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lancamento ID"
// @Param arquivoNf formData file false "Replacement invoice file"
// @Success 200 {object} model.Lancamento
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lancamentos/{id} [put]
func (h *LancamentoHandler) Update(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	in := bindLancamentoForm(c)
	file := optionalFile(c, "arquivoNf")

	l, err := h.svc.Update(c.Request().Context(), id, in, file, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, l)
}

// Delete godoc
// @Summary Delete a lancamento and its attachment
// @Tags lancamentos
// @Security BearerAuth
// @Param id path int true "Lancamento ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lancamentos/{id} [delete]
func (h *LancamentoHandler) Delete(c echo.Context) error {
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

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// bindLancamentoForm reads the lowercase form field names the dashboard
// submits. Missing fields bind as empty strings; the service handles the
// lenient numeric parsing.
func bindLancamentoForm(c echo.Context) service.LancamentoInput {
	return service.LancamentoInput{
		Data:            c.FormValue("data"),
		HoraPostada:     c.FormValue("horapostada"),
		Origem:          c.FormValue("origem"),
		Destino:         c.FormValue("destino"),
		InicioDescarga:  c.FormValue("iniciodescarga"),
		TerminoDescarga: c.FormValue("terminodescarga"),
		TempoDescarga:   c.FormValue("tempodescarga"),
		Ticket:          c.FormValue("ticket"),
		PesoReal:        c.FormValue("pesoreal"),
		Tarifa:          c.FormValue("tarifa"),
		NF:              c.FormValue("nf"),
		Cavalo:          c.FormValue("cavalo"),
		Motorista:       c.FormValue("motorista"),
		Obs:             c.FormValue("obs"),
		Produto:         c.FormValue("produto"),
	}
}

// optionalFile returns nil when the form carries no upload under field.
func optionalFile(c echo.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		// covers http.ErrMissingFile and a non-multipart body alike
		return nil
	}
	return fh
}
