package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// keyFunc accepts HS256 tokens signed with the project secret and RS256
// tokens resolved through the JWKS provider.
func keyFunc(jwksProvider *auth.Provider, cfg *config.Config) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if cfg.SupabaseJWTSecret == "" {
				return nil, errors.New("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		case *jwt.SigningMethodRSA:
			if jwksProvider == nil {
				return nil, errors.New("RS256 token received but no JWKS provider is configured")
			}
			return jwksProvider.KeyFunc(token)
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// signupRole reads the role chosen at sign-up from user_metadata. It only
// matters the first time a user is seen.
func signupRole(claims jwt.MapClaims) string {
	meta, ok := claims["user_metadata"].(map[string]interface{})
	if !ok {
		return ""
	}
	role, _ := meta["role"].(string)
	return role
}

// AuthMiddleware validates the bearer token and loads the local user row,
// creating it on first sight. The role always comes from the database.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "RS256"}))
	resolve := keyFunc(jwksProvider, cfg)

	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, resolve)
		if err != nil || !token.Valid {
			logger.Log.Debug("token validation failed", "error", err, "request_id", c.GetString("RequestID"))
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		user, err := authUC.EnsureUserExists(c.Request.Context(), &domain.User{
			ID:    sub,
			Email: email,
			Role:  signupRole(claims),
		})
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("failed to load user", "user_id", sub, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
			c.Abort()
			return
		}

		if user.IsDisabled {
			response.Error(c, http.StatusForbidden, "Account disabled", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRole rejects authenticated users whose role is not listed.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
		c.Abort()
	}
}
