package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pesagem/internal/service"
)

// UserHandler handles the master-only user administration endpoints, mounted
// at /api/utilizadores and the legacy alias /api/motoristas.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// @Summary List users
// @Tags utilizadores
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/utilizadores [get]
func (h *UserHandler) List(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	users, err := h.svc.List(c.Request().Context(), ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary Create a user with an arbitrary role
// @Tags utilizadores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body service.UserInput true "User payload"
// @Success 201 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/utilizadores [post]
func (h *UserHandler) Create(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var in service.UserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Create(c.Request().Context(), in, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update a user's profile, role or password
// @Tags utilizadores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body service.UserInput true "User payload"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/utilizadores/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in service.UserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.Update(c.Request().Context(), id, in, ident)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags utilizadores
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/utilizadores/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
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
