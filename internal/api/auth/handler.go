package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gallery-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const (
	RoleAdmin = "admin"
	tokenTTL  = 24 * time.Hour
)

var errNotAllowed = errors.New("account is not allowed to administer the gallery")

type Handler struct {
	jwtKey       []byte
	admin        config.AdminConfig
	google       config.GoogleConfig
	oauth        *oauth2.Config
	verify       idTokenVerifier
	secureCookie bool
	now          func() time.Time
	log          *zap.Logger
}

func NewHandler(cfg *config.Config, log *zap.Logger) *Handler {
	h := &Handler{
		jwtKey:       []byte(cfg.JWTSecret),
		admin:        cfg.Admin,
		google:       cfg.Google,
		secureCookie: cfg.Env == config.EnvProd,
		now:          time.Now,
		log:          log,
	}
	if cfg.Google.Enabled() {
		h.oauth = googleOAuthConfig(cfg.Google)
		h.verify = oidcVerifier(cfg.Google.ClientID)
	}
	return h
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.admin.Email == "" || h.admin.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password sign-in is disabled"})
		return
	}
	if !strings.EqualFold(strings.TrimSpace(input.Email), h.admin.Email) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(input.Password)); err != nil {
		h.log.Warn("admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := h.issueAdminJWT(h.admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	h.log.Info("admin login", zap.String("email", h.admin.Email), zap.String("provider", "password"))
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

func (h *Handler) issueAdminJWT(email string) (string, error) {
	now := h.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": strings.ToLower(email),
		"role":  RoleAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(h.jwtKey)
}

// allowedGoogleAdmin reports whether a verified Google email may sign in.
func (h *Handler) allowedGoogleAdmin(email string) bool {
	for _, allowed := range h.admin.GoogleEmails {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return h.admin.Email != "" && strings.EqualFold(h.admin.Email, email)
}
