package controller

import (
	"errors"

	"ap_study_backend/internal/service"
	"ap_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MaterialController struct {
	MaterialService *service.MaterialService
}

func NewMaterialController(materialService *service.MaterialService) *MaterialController {
	return &MaterialController{MaterialService: materialService}
}

// Upload godoc
// @Summary Upload a study material
// @Description Stores the file and extracts its text for plan personalization.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Study material, 10 MB max"
// @Success 201 {object} util.Response{data=model.StudyMaterial}
// @Failure 400 {object} util.Response
// @Router /api/materials/upload [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file field is required")
		return
	}

	material, err := c.MaterialService.Upload(ctx.Request.Context(), claims.UserID, header)
	if err != nil {
		if errors.Is(err, util.ErrEmptyUpload) || errors.Is(err, util.ErrUploadTooLarge) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, material)
}

// List godoc
// @Summary List uploaded study materials, newest first
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.StudyMaterial}
// @Router /api/materials [get]
func (c *MaterialController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	materials, err := c.MaterialService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, materials)
}
