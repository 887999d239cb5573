package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pesagem/internal/model"
	"pesagem/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a self-service driver registration.
type RegisterRequest struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required,min=3"`
	NomeCompleto   string `json:"nome_completo"`
	CPF            string `json:"cpf"`
	CNH            string `json:"cnh"`
	PlacaCavalo    string `json:"placa_cavalo"`
	PlacasCarretas string `json:"placas_carretas"`
}

// LoginResponse carries the session token plus the profile fields the
// dashboard needs without a second round trip.
type LoginResponse struct {
	Token        string     `json:"token"`
	Role         model.Role `json:"role"`
	NomeCompleto string     `json:"nome_completo"`
	PlacaCavalo  string     `json:"placa_cavalo"`
}

// Login godoc
// @Summary Authenticate and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token:        token,
		Role:         user.Role,
		NomeCompleto: user.NomeCompleto,
		PlacaCavalo:  user.PlacaCavalo,
	})
}

// Register godoc
// @Summary Register a new motorista account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, model.User{
		NomeCompleto:   req.NomeCompleto,
		CPF:            req.CPF,
		CNH:            req.CNH,
		PlacaCavalo:    req.PlacaCavalo,
		PlacasCarretas: req.PlacasCarretas,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Logout godoc
// @Summary Invalidate the presented session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "sessão encerrada"})
}
