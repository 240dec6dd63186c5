package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/internal/api/middleware"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
	"github.com/qs3c/contenthub_go_server/internal/service"
)

type AccountHandler struct {
	accountSvc *service.AccountService
	userSvc    *service.UserService
}

func NewAccountHandler(accountSvc *service.AccountService, userSvc *service.UserService) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
		userSvc:    userSvc,
	}
}

// Profile 当前用户信息
// GET /api/v1/account/profile
func (h *AccountHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	info, err := h.userSvc.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.AuthError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, info)
}

// CheckUpdate 轮询角色/订阅变更标记
// GET /api/v1/account/check-update
func (h *AccountHandler) CheckUpdate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.accountSvc.CheckUpdate(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.AuthError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}

// MarkRefreshed 确认已拉取最新标志，清除变更标记
// POST /api/v1/account/mark-refreshed
func (h *AccountHandler) MarkRefreshed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.accountSvc.MarkRefreshed(userID); err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "已确认", nil)
}

// RequestPasswordChange 发起修改密码（发送验证码到绑定邮箱）
// POST /api/v1/account/password-change/request
func (h *AccountHandler) RequestPasswordChange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.accountSvc.RequestPasswordChange(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.AuthError(c, err.Error())
		case errors.Is(err, service.ErrSendCooldown):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "验证码已发送", nil)
}

// ConfirmPasswordChange 消费验证码并更新密码
// POST /api/v1/account/password-change/confirm
func (h *AccountHandler) ConfirmPasswordChange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ConfirmPasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.accountSvc.ConfirmPasswordChange(userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVerifyCode):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.AuthError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "密码修改成功", nil)
}

// RequestDeletion 发起注销账号（发送验证码到绑定邮箱）
// POST /api/v1/account/deletion/request
func (h *AccountHandler) RequestDeletion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.accountSvc.RequestDeletion(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.AuthError(c, err.Error())
		case errors.Is(err, service.ErrSendCooldown):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "验证码已发送", nil)
}

// ConfirmDeletion 消费验证码并注销账号，级联删除收藏与置顶
// POST /api/v1/account/deletion/confirm
func (h *AccountHandler) ConfirmDeletion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ConfirmDeletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.accountSvc.ConfirmDeletion(userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVerifyCode):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.AuthError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "账号已注销", nil)
}
