// utils/auth.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// BusinessIDKey is the gin context key holding the authenticated tenant id.
const BusinessIDKey = "businessId"

type AuthErrorKind int

const (
	AuthMissingOrMalformed AuthErrorKind = iota
	AuthExpired
	AuthInvalid
	AuthMissingSubject
)

// AuthError is any failure to establish the caller's tenant. All kinds
// surface as 401 before resource logic runs.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// TokenVerifier validates bearer credentials and extracts the tenant id from
// the subject claim. That id is the sole tenant-isolation key, so every
// downstream query trusts what Verify returns.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify checks an Authorization header value of the form "Bearer <token>".
// Tokens must be HS256-signed with the configured secret. The audience claim
// is not checked; tokens come from the external identity provider as-is.
func (v *TokenVerifier) Verify(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", &AuthError{Kind: AuthMissingOrMalformed, Message: "Missing or invalid Authorization header"}
	}
	tokenString := strings.TrimPrefix(authorization, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", &AuthError{Kind: AuthExpired, Message: "Token expired"}
		}
		return "", &AuthError{Kind: AuthInvalid, Message: "Invalid token"}
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", &AuthError{Kind: AuthMissingSubject, Message: "Token missing subject"}
	}
	return subject, nil
}

// AuthMiddleware aborts with 401 before any resource logic when the bearer
// token does not verify; otherwise it stores the tenant id in the context.
func AuthMiddleware(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID, err := verifier.Verify(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(BusinessIDKey, businessID)
		c.Next()
	}
}
