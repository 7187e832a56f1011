package auth

import (
	"net/http"

	apperrors "entry-tracker-backend/internal/errors"
	"entry-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	config  *AuthConfig
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, config *AuthConfig) *AuthHandler {
	return &AuthHandler{service: service, config: config}
}

// Signup handles POST /api/v1/auth/signup
// @Summary Register a new account
// @Description Create a user and start a session. The session token is set as a cookie and returned in the body.
// @Tags authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} AuthResponse "Account created"
// @Failure 400 {object} map[string]interface{} "Missing or invalid field"
// @Failure 409 {object} map[string]interface{} "Username or email already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify email and password and start a session
// @Tags authentication
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse "Logged in"
// @Failure 400 {object} map[string]interface{} "Missing field"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description End every session the client presents and clear the session cookie. Succeeds even when the session already expired.
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthLogoutResponse "Logged out"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	for _, token := range TokensFromRequest(c, h.config.CookieName) {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.respondError(c, err)
			return
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Return the user behind the current session
// @Tags authentication
// @Produce json
// @Success 200 {object} UserResponse "Current user"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security SessionCookie
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context(), c.GetString(contextToken))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error("Authentication request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, token, int(h.config.AbsoluteTimeout.Seconds()), "/", "", h.config.CookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, "", -1, "/", "", h.config.CookieSecure, true)
}
