package controller

import (
	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/pkg/serverutils"
	"collegeplan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router, sessionMW fiber.Handler)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	uploadService service.IUploadService
}

func NewUploadController(uploadService service.IUploadService) IUploadController {
	return &uploadController{
		uploadService: uploadService,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router, sessionMW fiber.Handler) {
	r.Post("/upload", sessionMW, c.Upload)
}

// Upload accepts multipart form files under the "files" field (with "file"
// as a single-upload fallback) and stores them on disk.
func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return apperrors.NewValidation("multipart form required")
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}

	res, err := c.uploadService.Store(files)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload files", res))
}
