package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Praveenkumar07007/BlogApp/internal/auth"
	"github.com/Praveenkumar07007/BlogApp/internal/dto"
	"github.com/Praveenkumar07007/BlogApp/internal/oauth"
	"github.com/Praveenkumar07007/BlogApp/internal/service"

	"github.com/gin-gonic/gin"
)

// GoogleHandler handles the Google login redirect round-trip.
type GoogleHandler struct {
	client    *oauth.GoogleClient
	states    *auth.StateStore
	googleSvc *service.GoogleService
	tokens    *auth.TokenCodec
}

// NewGoogleHandler returns a new GoogleHandler. client may be nil when
// Google login is not configured; both endpoints then respond 500.
func NewGoogleHandler(client *oauth.GoogleClient, states *auth.StateStore, googleSvc *service.GoogleService, tokens *auth.TokenCodec) *GoogleHandler {
	return &GoogleHandler{client: client, states: states, googleSvc: googleSvc, tokens: tokens}
}

// Login godoc
// @Summary      Redirect to Google consent page
// @Tags         google-auth
// @Success      302
// @Failure      500  {object}  map[string]string
// @Router       /google/login [get]
func (h *GoogleHandler) Login(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google OAuth not configured. Please set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET."})
		return
	}
	state, err := h.states.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start Google login"})
		return
	}
	c.Redirect(http.StatusFound, h.client.AuthCodeURL(state))
}

// Callback godoc
// @Summary      Google OAuth callback
// @Tags         google-auth
// @Produce      json
// @Param        code   query  string  true   "Authorization code"
// @Param        state  query  string  true   "Anti-forgery state"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /google/callback [get]
func (h *GoogleHandler) Callback(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google OAuth not configured"})
		return
	}
	ok, err := h.states.Consume(c.Request.Context(), c.Query("state"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify login state"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorization code not found"})
		return
	}

	info, err := h.client.FetchUserInfo(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, oauth.ErrProvider) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Google OAuth error: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}
	if info.ID == "" || info.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "required user information not available from Google"})
		return
	}
	name := info.Name
	if name == "" {
		// Fall back to the local part of the email address.
		name, _, _ = strings.Cut(info.Email, "@")
	}

	user, err := h.googleSvc.Reconcile(c.Request.Context(), info.ID, name, info.Email, info.Picture)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}

	token, err := h.tokens.Issue(user.Email, &user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Authentication successful via Google!",
		"access_token": token,
		"token_type":   "bearer",
		"user": dto.UserResponse{
			ID:             user.ID,
			Username:       user.Username,
			Email:          user.Email,
			AuthProvider:   user.AuthProvider,
			ProfilePicture: user.ProfilePicture,
			CreatedAt:      user.CreatedAt,
		},
	})
}
