// Package auth gates the admin API: bcrypt-checked login, signed
// time-limited JWTs carried in an HTTP-only cookie.
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CookieName is the cookie carrying the admin session token.
const CookieName = "folio_session"

// DefaultTTL matches the product's 7-day admin session.
const DefaultTTL = 7 * 24 * time.Hour

var ErrBadCredentials = errors.New("invalid email or password")

// Service issues and verifies admin credentials. There is exactly one
// admin identity, configured as an email plus a bcrypt password hash.
type Service struct {
	secret       []byte
	email        string
	passwordHash []byte
	ttl          time.Duration
	log          *zap.Logger
}

func New(secret, email, passwordHash string, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret:       []byte(secret),
		email:        email,
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		log:          log,
	}
}

// TTL returns the session lifetime, for cookie expiry.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login checks the credentials and returns a signed token on success.
func (s *Service) Login(email, password string) (string, error) {
	if email != s.email {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Warn("failed login attempt", zap.String("email", email))
		return "", ErrBadCredentials
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks a token's signature and expiry, returning the embedded
// identity. A bad token is not an error condition, just an absent identity.
func (s *Service) Verify(token string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", false
	}
	return claims.Subject, true
}

// Identity extracts and verifies the session cookie from a request.
func (s *Service) Identity(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return s.Verify(cookie.Value)
}

// SetCookie installs the session cookie on a response.
func (s *Service) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (s *Service) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HashPassword produces a bcrypt hash for the config file.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
