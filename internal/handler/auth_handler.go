package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/service"
)

// AuthHandler handles registration, login and logout pages
type AuthHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// LoginViewModel holds data for the login page
type LoginViewModel struct {
	Page
	FormUsername string
}

// RegisterViewModel holds data for the registration page
type RegisterViewModel struct {
	Page
	FormUsername string
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c echo.Context) error {
	// Already authenticated callers go straight to the listing
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if _, err := h.authService.UserFromSession(cookie.Value); err == nil {
			return c.Redirect(http.StatusFound, "/")
		}
	}
	return c.Render(http.StatusOK, "login.html", LoginViewModel{
		Page: Page{Title: "Log in", Flash: popFlash(c)},
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	renderError := func(message string) error {
		return c.Render(http.StatusOK, "login.html", LoginViewModel{
			Page:         Page{Title: "Log in", Error: message},
			FormUsername: username,
		})
	}

	if username == "" || password == "" {
		return renderError("Username and password are required.")
	}

	session, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Generic message: unknown user and wrong password look the same
			return renderError("Login failed. Please check your username and password.")
		}
		log.Error().Err(err).Msg("Login failed")
		return renderError("Something went wrong. Please try again.")
	}

	middleware.SetSessionCookie(c, session.Token, h.authService.SessionTTL(), h.secureCookies)
	return c.Redirect(http.StatusFound, "/")
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", RegisterViewModel{
		Page: Page{Title: "Register", Flash: popFlash(c)},
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	_, err := h.authService.Register(username, password, confirm)
	if err != nil {
		message := "Something went wrong. Please try again."
		switch {
		case errors.Is(err, domain.ErrUsernameTooShort):
			message = "Username must be at least 4 characters."
		case errors.Is(err, domain.ErrUsernameTooLong):
			message = "Username must be 50 characters or less."
		case errors.Is(err, domain.ErrPasswordTooShort):
			message = "Password must be at least 6 characters."
		case errors.Is(err, domain.ErrPasswordMismatch):
			message = "Passwords do not match."
		case errors.Is(err, domain.ErrUsernameTaken):
			message = "Username already exists. Please choose a different one."
		default:
			log.Error().Err(err).Msg("Registration failed")
		}
		return c.Render(http.StatusOK, "register.html", RegisterViewModel{
			Page:         Page{Title: "Register", Error: message},
			FormUsername: username,
		})
	}

	setFlash(c, "Registration successful. You can now log in.")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.authService.Logout(token); err != nil {
			log.Error().Err(err).Msg("Failed to delete session")
		}
	}
	middleware.ClearSessionCookie(c, h.secureCookies)
	setFlash(c, "You have been logged out.")
	return c.Redirect(http.StatusFound, "/login")
}
