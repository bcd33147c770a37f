package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	appauth "github.com/campushub/registra/internal/app/auth"
	"github.com/campushub/registra/internal/pkg/apperrors"
	pkgauth "github.com/campushub/registra/internal/pkg/auth"
)

// JWTAuth validates the bearer token and stores the caller's identity in
// the request context.
func JWTAuth(jwtService *pkgauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := pkgauth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidFormat)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			if errors.Is(err, pkgauth.ErrExpiredToken) {
				abortUnauthorized(c, apperrors.ErrTokenExpired)
				return
			}
			abortUnauthorized(c, apperrors.ErrTokenInvalid)
			return
		}

		appauth.SetIdentity(c, appauth.Identity{
			UserID:       claims.UserID,
			Username:     claims.Username,
			Role:         claims.Role,
			StudentID:    claims.StudentID,
			InstructorID: claims.InstructorID,
		})

		c.Next()
	}
}

// OptionalJWTAuth populates the identity when a valid bearer token is
// present but lets anonymous requests through. Public reads use it so
// caller-specific fields can still be filled in.
func OptionalJWTAuth(jwtService *pkgauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, err := pkgauth.ExtractBearerToken(header)
		if err == nil {
			if claims, err := jwtService.ValidateAndExtractClaims(token); err == nil {
				appauth.SetIdentity(c, appauth.Identity{
					UserID:       claims.UserID,
					Username:     claims.Username,
					Role:         claims.Role,
					StudentID:    claims.StudentID,
					InstructorID: claims.InstructorID,
				})
			}
		}

		c.Next()
	}
}

// ManagerRequired rejects callers that may not manage student and course
// records. It must run after JWTAuth.
func ManagerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := appauth.CurrentIdentity(c)
		if !identity.CanManageRecords() {
			HandleAPIError(c, apperrors.NewForbiddenError("this action requires an admin or instructor account"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	HandleAPIError(c, err)
	c.Abort()
}
