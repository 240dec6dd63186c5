package handler

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/oss"
	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
)

const maxUploadSize = 100 << 20 // 100MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMediaExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".webm": true,
}

type UploadHandler struct {
	ossClient *oss.Client
}

func NewUploadHandler(ossClient *oss.Client) *UploadHandler {
	return &UploadHandler{ossClient: ossClient}
}

// UploadMedia 上传内容媒体文件（管理员）
// POST /api/v1/admin/upload/media
func (h *UploadHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ParamError(c, "缺少上传文件")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.ParamError(c, "文件大小超过限制")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedMediaExts[ext] {
		response.ParamError(c, "不支持的文件类型")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	url, err := h.ossClient.UploadMedia(data, ext)
	if err != nil {
		response.ServerError(c, "文件上传失败")
		return
	}

	response.SuccessWithMessage(c, "上传成功", &dto.UploadMediaResponse{URL: url})
}

// UploadBanner 上传分类横幅图（管理员）
// POST /api/v1/admin/upload/banner/:category_id
func (h *UploadHandler) UploadBanner(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("category_id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的分类 ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ParamError(c, "缺少上传文件")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.ParamError(c, "文件大小超过限制")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		response.ParamError(c, "横幅仅支持图片")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	url, err := h.ossClient.UploadBanner(categoryID, data, ext)
	if err != nil {
		response.ServerError(c, "文件上传失败")
		return
	}

	response.SuccessWithMessage(c, "上传成功", &dto.UploadMediaResponse{URL: url})
}
