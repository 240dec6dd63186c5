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

type FolderHandler struct {
	folderSvc *service.FolderService
}

func NewFolderHandler(folderSvc *service.FolderService) *FolderHandler {
	return &FolderHandler{folderSvc: folderSvc}
}

// Detail 目录详情（含目录下内容，访问需对所属分类有权限）
// GET /api/v1/folders/:id
func (h *FolderHandler) Detail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	folderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的目录 ID")
		return
	}

	detail, err := h.folderSvc.GetDetail(userID, folderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFolderNotFound),
			errors.Is(err, service.ErrCategoryNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrSubscriptionRequired):
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, detail)
}

// Create 创建目录（管理员）
// POST /api/v1/admin/folders
func (h *FolderHandler) Create(c *gin.Context) {
	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	folder, err := h.folderSvc.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "创建成功", folder)
}

// Update 重命名目录（管理员）
// PUT /api/v1/admin/folders/:id
func (h *FolderHandler) Update(c *gin.Context) {
	folderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的目录 ID")
		return
	}

	var req dto.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	folder, err := h.folderSvc.Update(folderID, &req)
	if err != nil {
		if errors.Is(err, service.ErrFolderNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "更新成功", folder)
}

// Delete 删除目录及其内容（管理员）
// DELETE /api/v1/admin/folders/:id
func (h *FolderHandler) Delete(c *gin.Context) {
	folderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的目录 ID")
		return
	}

	if err := h.folderSvc.Delete(folderID); err != nil {
		if errors.Is(err, service.ErrFolderNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
