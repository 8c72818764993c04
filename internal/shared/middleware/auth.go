package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tattoo-studio/internal/shared/response"
	"tattoo-studio/pkg/jwt"
	"tattoo-studio/pkg/logger"
)

// UserIDKey là key lưu caller identity trong gin context
const UserIDKey = "userID"

var ErrNoIdentity = errors.New("no authenticated user in context")

// AuthMiddleware xác thực Bearer access token và gắn userID vào context.
// Mọi request không có token hợp lệ đều nhận 401.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify access token
		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			logger.Debug("access token rejected: " + err.Error())
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// 4. Convert user_id claim sang uuid.UUID
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Invalid token subject")
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID trả về identity mà AuthMiddleware đã gắn vào context
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrNoIdentity
	}
	return id, nil
}
