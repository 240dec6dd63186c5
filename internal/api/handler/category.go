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

type CategoryHandler struct {
	categorySvc    *service.CategoryService
	entitlementSvc *service.EntitlementService
}

func NewCategoryHandler(categorySvc *service.CategoryService, entitlementSvc *service.EntitlementService) *CategoryHandler {
	return &CategoryHandler{
		categorySvc:    categorySvc,
		entitlementSvc: entitlementSvc,
	}
}

// List 可见分类列表（置顶优先，付费在前，组内按名称排序）
// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	items, err := h.entitlementSvc.ListVisible(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}

// Detail 分类详情（含目录与根层内容）
// GET /api/v1/categories/:id
func (h *CategoryHandler) Detail(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的分类 ID")
		return
	}

	detail, err := h.categorySvc.GetDetail(userID, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
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

// SetPin 置顶/取消置顶分类
// PUT /api/v1/categories/:id/pin
func (h *CategoryHandler) SetPin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的分类 ID")
		return
	}

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.categorySvc.SetPinned(userID, categoryID, req.IsPinned); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrSubscriptionRequired):
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "操作成功", nil)
}

// Create 创建分类（管理员）
// POST /api/v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	category, err := h.categorySvc.Create(&req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "创建成功", category)
}

// Update 更新分类（管理员）
// PUT /api/v1/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的分类 ID")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	category, err := h.categorySvc.Update(categoryID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "更新成功", category)
}

// Delete 删除分类及其目录、内容、收藏、置顶（管理员）
// DELETE /api/v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的分类 ID")
		return
	}

	if err := h.categorySvc.Delete(categoryID); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
