package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionCookie = "investory_session"
	stateCookie   = "investory_oauth_state"
	nextCookie    = "investory_oauth_next"

	sessionMaxAge = 30 * 24 * time.Hour
)

// AuthHandler drives the Google sign-in pipeline: consent redirect, OAuth
// callback (code → token → profile → user upsert → session JWT), session
// read and logout. The user store is injected rather than reached through a
// package global so the pipeline is testable without Postgres.
type AuthHandler struct {
	cfg    Config
	store  UserStore
	google *googleClient
}

func NewAuthHandler(cfg Config, store UserStore) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		store:  store,
		google: newGoogleClient(cfg.GoogleClientID, cfg.GoogleClientSecret),
	}
}

func (h *AuthHandler) redirectURI() string {
	return h.cfg.BaseURL + "/api/auth/google/callback"
}

// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent screen. An optional ?next= parameter holds the post-login target, resolved with the same rules as the callback redirect.
// @Tags auth
// @Param next query string false "Post-login redirect target"
// @Success 302 "Redirect to Google"
// @Router /api/auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)

	if next := c.Query("next"); next != "" {
		c.SetCookie(nextCookie, next, 600, "/", "", false, true)
	}

	c.Redirect(http.StatusFound, h.google.buildAuthURL(h.redirectURI(), state))
}

// @Summary Google OAuth callback
// @Description Exchanges the authorization code, upserts the user record and sets the session cookie. Any store failure denies the sign-in.
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State nonce"
// @Success 302 "Redirect to the post-login target"
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error="+url.QueryEscape(errParam))
		return
	}

	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != cookieState {
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error=invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error=missing_code")
		return
	}

	token, err := h.google.exchangeCode(code, h.redirectURI())
	if err != nil {
		log.Printf("Error exchanging Google code: %v", err)
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error=exchange_failed")
		return
	}

	info, err := h.google.fetchUserInfo(token.AccessToken)
	if err != nil {
		log.Printf("Error fetching Google profile: %v", err)
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error=profile_failed")
		return
	}

	user, err := h.signIn(c.Request.Context(), info)
	if err != nil {
		// Store failure denies the sign-in outright; no degraded session
		log.Printf("Error saving user on sign-in: %v", err)
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error=signin_failed")
		return
	}

	sessionToken, err := h.issueSessionToken(user)
	if err != nil {
		log.Printf("Error issuing session token: %v", err)
		c.Redirect(http.StatusFound, h.cfg.BaseURL+"/auth?error=session_failed")
		return
	}

	next, _ := c.Cookie(nextCookie)
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)
	c.SetCookie(nextCookie, "", -1, "/", "", false, true)
	c.SetCookie(sessionCookie, sessionToken, int(sessionMaxAge.Seconds()), "/", "", false, true)

	c.Redirect(http.StatusFound, resolveRedirect(next, h.cfg.BaseURL))
}

// @Summary Current session
// @Description Returns the signed-in user derived from the session token (cookie or bearer).
// @Tags auth
// @Produce json
// @Success 200 {object} Session "Authenticated session"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /api/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	tokenString, err := c.Cookie(sessionCookie)
	if err != nil || tokenString == "" {
		tokenString = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	claims, err := h.parseSessionToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	c.JSON(http.StatusOK, sessionFromClaims(claims))
}

// @Summary Log out
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// signIn upserts the user record for a verified Google profile. First
// sign-in inserts the row; later sign-ins advance last_login and refresh
// name/image to track provider-side changes.
func (h *AuthHandler) signIn(ctx context.Context, info *googleUserInfo) (*User, error) {
	existing, err := h.store.GetUserByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return h.store.CreateUser(ctx, info.Email, info.Name, info.Picture)
	}
	return h.store.TouchUser(ctx, info.Email, info.Name, info.Picture)
}

// issueSessionToken mints the session JWT carrying the user id and picture
func (h *AuthHandler) issueSessionToken(user *User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"picture": user.Image,
		"iat":     now.Unix(),
		"exp":     now.Add(sessionMaxAge).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// parseSessionToken verifies the HMAC signature and returns the claims
func (h *AuthHandler) parseSessionToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// sessionFromClaims copies the identity fields from the verified token onto
// the outward-facing session object
func sessionFromClaims(claims jwt.MapClaims) Session {
	var s Session
	if id, ok := claims["sub"].(string); ok {
		s.ID = id
	}
	if email, ok := claims["email"].(string); ok {
		s.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		s.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		s.Image = picture
	}
	return s
}

// resolveRedirect decides where the browser lands after sign-in: relative
// targets resolve against the base URL, same-origin absolute URLs pass
// through, everything else is forced to the dashboard. This keeps the
// callback from open-redirecting to arbitrary external targets.
func resolveRedirect(target, baseURL string) string {
	if strings.HasPrefix(target, "/") {
		return baseURL + target
	}

	parsed, err := url.Parse(target)
	base, baseErr := url.Parse(baseURL)
	if err == nil && baseErr == nil &&
		parsed.Scheme == base.Scheme && parsed.Host != "" && parsed.Host == base.Host {
		return target
	}

	return baseURL + "/dashboard"
}
