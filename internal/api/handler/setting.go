package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
	"github.com/qs3c/contenthub_go_server/internal/service"
)

type SettingHandler struct {
	settingSvc *service.SettingService
}

func NewSettingHandler(settingSvc *service.SettingService) *SettingHandler {
	return &SettingHandler{settingSvc: settingSvc}
}

// GetAccessTime 读取全局每日访问时长（管理员）
// GET /api/v1/admin/settings/access-time
func (h *SettingHandler) GetAccessTime(c *gin.Context) {
	limit, err := h.settingSvc.GetAccessTimeLimit()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, &dto.AccessTimeSetting{AccessTimeLimit: limit})
}

// SetAccessTime 更新全局每日访问时长（管理员）。
// 只影响后续重置，已在计时中的用户当天不变。
// PUT /api/v1/admin/settings/access-time
func (h *SettingHandler) SetAccessTime(c *gin.Context) {
	var req dto.AccessTimeSetting
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.settingSvc.SetAccessTimeLimit(req.AccessTimeLimit); err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "设置成功", nil)
}

// GetBeta 读取内测模式设置（管理员）
// GET /api/v1/admin/settings/beta
func (h *SettingHandler) GetBeta(c *gin.Context) {
	setting, err := h.settingSvc.GetBetaSetting()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, setting)
}

// SetBeta 更新内测模式设置（管理员）
// PUT /api/v1/admin/settings/beta
func (h *SettingHandler) SetBeta(c *gin.Context) {
	var req dto.BetaSetting
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.settingSvc.SetBetaSetting(req.BetaMode, req.BetaKey); err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "设置成功", nil)
}
