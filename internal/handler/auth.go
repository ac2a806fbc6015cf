package handler

import (
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timestamp formatting for token expiry

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/hotel-room-reservation/internal/config" // app configuration
	"github.com/iliyamo/hotel-room-reservation/internal/utils"  // helper functions (hashing, token issuing)
)

// AuthHandler authenticates the built-in admin account.  There is no
// user table: the single admin identity comes from configuration, and
// its password is bcrypt-hashed once at startup so the plain value is
// never compared directly.
type AuthHandler struct {
	Cfg       config.Config
	adminHash string
}

// NewAuthHandler hashes the configured admin password and returns the
// handler.  A hashing failure is a startup error, not a request error.
func NewAuthHandler(cfg config.Config) (*AuthHandler, error) {
	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{Cfg: cfg, adminHash: hash}, nil
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

type loginResp struct {
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Access tokenPart `json:"access"`
}

// Login verifies the admin credentials and issues an access token with
// the ADMIN role.  Wrong email and wrong password are indistinguishable
// in the response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	if !strings.EqualFold(req.Email, h.Cfg.AdminEmail) || !utils.VerifyPassword(h.adminHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, req.Email, "ADMIN", h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token issue failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Email:  req.Email,
		Role:   "ADMIN",
		Access: tokenPart{Token: access.Token, Expires: access.Exp.Format(time.RFC3339)},
	})
}

// Me returns the authenticated identity extracted by the JWT middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"email": c.Get("user_id"),
		"role":  c.Get("role"),
	})
}
