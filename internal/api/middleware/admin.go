package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
	"github.com/qs3c/contenthub_go_server/internal/repository"
)

// AdminRequired 管理员权限中间件，须挂在 Auth 之后。
// 每次请求都重新查库取 is_admin，不信任会话缓存，
// 管理员被撤权后下一个请求立即生效。
func AdminRequired(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			response.AuthError(c, "用户不存在")
			c.Abort()
			return
		}

		if !user.IsAdmin {
			response.PermissionError(c, "需要管理员权限")
			c.Abort()
			return
		}

		c.Next()
	}
}
