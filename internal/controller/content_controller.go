package controller

import (
	"ap_study_backend/internal/service"
	"ap_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
	UserService    *service.UserService
}

func NewContentController(contentService *service.ContentService, userService *service.UserService) *ContentController {
	return &ContentController{ContentService: contentService, UserService: userService}
}

// GenerateContentRequest selects the exercise to generate. Difficulty and
// style default to the stored profile when omitted.
type GenerateContentRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
	Style      string `json:"style"`
}

// Generate godoc
// @Summary Generate one practice exercise
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateContentRequest true "Subject, topic and optional overrides"
// @Success 200 {object} util.Response{data=engine.StudyContent}
// @Failure 400 {object} util.Response
// @Router /api/content/generate [post]
func (c *ContentController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = user.PreferredDifficulty
	}
	if req.Style == "" {
		req.Style = user.LearningStyle
	}

	content := c.ContentService.GenerateContent(ctx.Request.Context(), req.Subject, req.Topic, req.Difficulty, req.Style)
	util.Success(ctx, content)
}

// QuestionSets godoc
// @Summary Generate the practice question sets for a topic
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateContentRequest true "Subject, topic and optional overrides"
// @Success 200 {object} util.Response{data=[]engine.QuestionSet}
// @Failure 400 {object} util.Response
// @Router /api/content/question-sets [post]
func (c *ContentController) QuestionSets(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = user.PreferredDifficulty
	}
	profile := c.UserService.BuildLearnerProfile(user)

	sets := c.ContentService.GenerateQuestionSets(req.Subject, req.Topic, req.Difficulty, profile)
	util.Success(ctx, sets)
}
