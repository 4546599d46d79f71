package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var jwtKey []byte

// ErrInvalidToken covers every verification failure. Callers cannot tell
// an expired token from a forged one.
var ErrInvalidToken = errors.New("invalid token")

// Init sets the signing secret. Must be called before tokens are issued.
func Init(secret string) {
	jwtKey = []byte(secret)
}

// Claims defines the JWT claims structure. The subject is the admin username.
type Claims struct {
	jwt.RegisteredClaims
}

// ClaimsKey is the context key under which verified claims are stored.
type contextKey string

const ClaimsKey = contextKey("adminClaims")

// TokenTTL is how long an issued token stays valid. There is no refresh;
// the admin logs in again after expiry.
const TokenTTL = 24 * time.Hour

// IssueToken creates a signed token for the given admin username.
func IssueToken(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// VerifyToken parses and validates a token string.
func VerifyToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		// The distinction between expired and malformed matters for the
		// operator, not for the caller.
		log.Debug().Err(err).Msg("Token verification failed")
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Middleware protects admin routes. It extracts a bearer token from the
// Authorization header, verifies it, and passes the claims down via context.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				unauthorized(w)
				return
			}

			claims, err := VerifyToken(tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"Not authenticated"}`))
}
