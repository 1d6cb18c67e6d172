package controller

import (
	"ap_study_backend/internal/service"
	"ap_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Record godoc
// @Summary Record a finished study session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.RecordSessionRequest true "Session results"
// @Success 201 {object} util.Response{data=engine.SessionRecord}
// @Failure 400 {object} util.Response
// @Router /api/sessions [post]
func (c *ProgressController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, err := c.ProgressService.Record(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, rec)
}

// History godoc
// @Summary List the retained session history
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]engine.SessionRecord}
// @Router /api/sessions [get]
func (c *ProgressController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Insights godoc
// @Summary Aggregate insights over the retained session history
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=engine.SessionInsights}
// @Router /api/sessions/insights [get]
func (c *ProgressController) Insights(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	insights, err := c.ProgressService.Insights(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, insights)
}
