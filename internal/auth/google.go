package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	sharedauth "careerhub-backend/internal/shared/auth"
	"careerhub-backend/internal/shared/server/respond"
	"careerhub-backend/internal/shared/telemetry"
	"careerhub-backend/internal/users"
)

const (
	stateTTL        = 5 * time.Minute
	userInfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
	userInfoTimeout = 10 * time.Second
)

// GoogleService handles the Google OAuth login flow and issues API tokens.
type GoogleService struct {
	OAuth      *oauth2.Config
	Users      *users.Service
	UIRedirect string

	states stateStore
}

// Config carries the OAuth client settings read from the environment.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	UIRedirect   string
}

func NewGoogleService(cfg Config, userSvc *users.Service) *GoogleService {
	return &GoogleService{
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		Users:      userSvc,
		UIRedirect: cfg.UIRedirect,
	}
}

func (s *GoogleService) Enabled() bool {
	return s != nil && s.OAuth != nil && s.OAuth.ClientID != "" && s.OAuth.ClientSecret != ""
}

func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", s.start)
	rg.GET("/auth/google/callback", s.callback)
}

func (s *GoogleService) start(c *gin.Context) {
	if !s.Enabled() {
		respond.Error(c, http.StatusServiceUnavailable, "auth_disabled", "google login is not configured", nil)
		return
	}
	state, err := newState()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start login", nil)
		return
	}
	s.states.put(state)
	c.Redirect(http.StatusFound, s.OAuth.AuthCodeURL(state))
}

func (s *GoogleService) callback(c *gin.Context) {
	if !s.Enabled() {
		respond.Error(c, http.StatusServiceUnavailable, "auth_disabled", "google login is not configured", nil)
		return
	}

	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" || !s.states.consume(state) {
		respond.Error(c, http.StatusBadRequest, "invalid_input", "invalid oauth callback", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		telemetry.Error("auth.exchange_failed", map[string]any{
			"requestId": c.GetString("requestId"),
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "auth_failed", "could not complete google login", nil)
		return
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		telemetry.Error("auth.userinfo_failed", map[string]any{
			"requestId": c.GetString("requestId"),
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "auth_failed", "could not load google profile", nil)
		return
	}

	userID := "google:" + info.Sub
	if s.Users != nil {
		err := s.Users.UpsertFromAuth(ctx, users.User{
			ID:         userID,
			Email:      info.Email,
			FullName:   info.Name,
			PictureURL: info.Picture,
		})
		if err != nil {
			telemetry.Error("auth.user_upsert_failed", map[string]any{
				"requestId": c.GetString("requestId"),
				"userId":    userID,
				"error":     err.Error(),
			})
		}
	}

	signed, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:     userID,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	})
	if err != nil {
		telemetry.Error("auth.sign_failed", map[string]any{
			"requestId": c.GetString("requestId"),
			"userId":    userID,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	if s.UIRedirect != "" {
		c.Redirect(http.StatusFound, appendToken(s.UIRedirect, signed))
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"token": signed})
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *GoogleService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, userInfoTimeout)
	defer cancel()

	client := s.OAuth.Client(ctx, token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, fmt.Errorf("decode userinfo: %w", err)
	}
	// The v2 endpoint reports "id" rather than "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	if info.Sub == "" || info.Email == "" {
		return googleUserInfo{}, fmt.Errorf("userinfo missing id or email")
	}
	return info, nil
}

func appendToken(redirect, token string) string {
	sep := "?"
	if strings.Contains(redirect, "?") {
		sep = "&"
	}
	return redirect + sep + "token=" + url.QueryEscape(token)
}

func newState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// stateStore tracks outstanding OAuth states with a short TTL.
type stateStore struct {
	mu     sync.Mutex
	issued map[string]time.Time
}

func (s *stateStore) put(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.issued == nil {
		s.issued = make(map[string]time.Time)
	}
	now := time.Now()
	for key, at := range s.issued {
		if now.Sub(at) > stateTTL {
			delete(s.issued, key)
		}
	}
	s.issued[state] = now
}

func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.issued[state]
	if !ok {
		return false
	}
	delete(s.issued, state)
	return time.Since(at) <= stateTTL
}
