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

type FavoriteHandler struct {
	favoriteSvc *service.FavoriteService
}

func NewFavoriteHandler(favoriteSvc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteSvc: favoriteSvc}
}

// List 收藏列表
// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	items, err := h.favoriteSvc.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, items)
}

// Add 添加收藏（普通用户上限 50 条）
// POST /api/v1/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.favoriteSvc.Add(userID, req.ContentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteLimit):
			response.LimitError(c, err.Error(), resp)
		case errors.Is(err, service.ErrAlreadyFavorited):
			response.DuplicateError(c, err.Error())
		case errors.Is(err, service.ErrContentNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "收藏成功", resp)
}

// Remove 取消收藏
// DELETE /api/v1/favorites/:content_id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	contentID, err := strconv.ParseInt(c.Param("content_id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的内容 ID")
		return
	}

	if err := h.favoriteSvc.Remove(userID, contentID); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.NotFoundError(c, "收藏记录不存在")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "已取消收藏", nil)
}

// Check 查询是否已收藏
// GET /api/v1/favorites/check/:content_id
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	contentID, err := strconv.ParseInt(c.Param("content_id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的内容 ID")
		return
	}

	favorited, err := h.favoriteSvc.Check(userID, contentID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, &dto.CheckFavoriteResponse{IsFavorited: favorited})
}
