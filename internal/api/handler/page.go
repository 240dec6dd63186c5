package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
	"github.com/qs3c/contenthub_go_server/internal/service"
)

type PageHandler struct {
	pageSvc *service.PageService
}

func NewPageHandler(pageSvc *service.PageService) *PageHandler {
	return &PageHandler{pageSvc: pageSvc}
}

// Get 页面配置（home 页缺失时返回默认配置）
// GET /api/v1/pages/:name
func (h *PageHandler) Get(c *gin.Context) {
	page, err := h.pageSvc.Get(c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, page)
}

// Update 更新页面配置，不存在时创建（管理员）
// PUT /api/v1/admin/pages/:name
func (h *PageHandler) Update(c *gin.Context) {
	var req dto.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	page, err := h.pageSvc.Update(c.Param("name"), &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "更新成功", page)
}
