package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Praveenkumar07007/BlogApp/internal/config"

	"golang.org/x/oauth2"
)

// ErrProvider marks failures talking to Google (network, HTTP status,
// malformed response). Wrapped errors carry the detail.
var ErrProvider = errors.New("google oauth provider error")

const userinfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

// Endpoints match the original Google OAuth2 token and consent URLs.
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// UserInfo is the subset of the Google userinfo response the backend uses.
// ID and Email are required; Name and Picture may be empty.
type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleClient exchanges authorization codes and fetches user info.
type GoogleClient struct {
	conf *oauth2.Config
}

// NewGoogleClient builds a client from config. Returns nil if Google login
// is not configured (missing client id/secret).
func NewGoogleClient(cfg config.GoogleConfig) *GoogleClient {
	if !cfg.Enabled() {
		return nil
	}
	return &GoogleClient{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleEndpoint,
		},
	}
}

// AuthCodeURL returns the Google consent page URL carrying the anti-forgery state.
func (g *GoogleClient) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state)
}

// FetchUserInfo exchanges the authorization code for an access token and
// looks up the user's profile. All failures are reported as ErrProvider.
func (g *GoogleClient) FetchUserInfo(ctx context.Context, code string) (UserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: code exchange: %v", ErrProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	resp, err := g.conf.Client(ctx, token).Do(req)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: userinfo: %v", ErrProvider, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("%w: userinfo status %d", ErrProvider, resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return UserInfo{}, fmt.Errorf("%w: decode userinfo: %v", ErrProvider, err)
	}
	return info, nil
}
