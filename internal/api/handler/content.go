package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/internal/api/middleware"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
	"github.com/qs3c/contenthub_go_server/internal/service"
)

type ContentHandler struct {
	contentSvc *service.ContentService
}

func NewContentHandler(contentSvc *service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

// Get 内容详情（访问需对所属分类有权限）
// GET /api/v1/content/:id
func (h *ContentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的内容 ID")
		return
	}

	content, err := h.contentSvc.Get(userID, contentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound),
			errors.Is(err, service.ErrCategoryNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrSubscriptionRequired):
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, content)
}

// Create 创建内容（管理员）
// POST /api/v1/admin/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	content, err := h.contentSvc.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound),
			errors.Is(err, service.ErrFolderNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrFolderMismatch):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "创建成功", content)
}

// Update 更新内容（管理员）
// PUT /api/v1/admin/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的内容 ID")
		return
	}

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	content, err := h.contentSvc.Update(contentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound),
			errors.Is(err, service.ErrFolderNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrFolderMismatch):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", content)
}

// Delete 删除内容及其收藏记录（管理员）
// DELETE /api/v1/admin/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的内容 ID")
		return
	}

	if err := h.contentSvc.Delete(contentID); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
