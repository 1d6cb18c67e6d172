package controller

import (
	"errors"
	"strconv"

	"ap_study_backend/internal/service"
	"ap_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
	UserService *service.UserService
}

func NewPlanController(planService *service.PlanService, userService *service.UserService) *PlanController {
	return &PlanController{PlanService: planService, UserService: userService}
}

// Generate godoc
// @Summary Generate a new adaptive study plan
// @Description Builds a plan from the stored profile, the request goals, and any uploaded materials. The new plan replaces the previous active one.
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.GeneratePlanRequest true "Goals and optional overrides"
// @Success 201 {object} util.Response{data=engine.StudyPlan}
// @Failure 400 {object} util.Response
// @Router /api/plans/generate [post]
func (c *PlanController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GeneratePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	profile := c.UserService.BuildLearnerProfile(user)

	plan, err := c.PlanService.Generate(ctx.Request.Context(), claims.UserID, profile, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyGoals):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidPlanStructure):
			util.Error(ctx, 502, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, plan)
}

// Active godoc
// @Summary Get the active study plan
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=engine.StudyPlan}
// @Failure 404 {object} util.Response
// @Router /api/plans/active [get]
func (c *PlanController) Active(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	plan, err := c.PlanService.Active(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, plan)
}

// History godoc
// @Summary List stored study plans, newest first
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum plans to return" default(10)
// @Success 200 {object} util.Response{data=[]model.StudyPlanRecord}
// @Router /api/plans [get]
func (c *PlanController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	plans, err := c.PlanService.History(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plans)
}
