package controller

import (
	"influence_survey/internal/service"
	"influence_survey/internal/util"
	"influence_survey/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionController struct {
	Questions *service.QuestionService
	Survey    *service.SurveyService
}

func NewQuestionController(questions *service.QuestionService, survey *service.SurveyService) *QuestionController {
	return &QuestionController{Questions: questions, Survey: survey}
}

// @Summary 获取分类结构
// @Description 3 个主类型、11 个细分战术及各自的题目位置
// @Tags 题库
// @Produce json
// @Success 200 {object} util.Response{data=[]service.StructureEntry}
// @Router /structure [get]
func (c *QuestionController) Structure(ctx *gin.Context) {
	util.Success(ctx, c.Survey.Structure())
}

// @Summary 获取题库
// @Description 返回已分类的 44 道题
// @Tags 题库
// @Produce json
// @Success 200 {object} util.Response{data=model.QuestionSet}
// @Failure 503 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	set, err := c.Questions.Questions(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, set)
}

// @Summary 重新加载题库
// @Description 丢弃缓存并重新读取题库来源
// @Tags 题库
// @Produce json
// @Success 200 {object} util.Response{data=model.QuestionSet}
// @Failure 503 {object} util.Response
// @Router /questions/reload [post]
func (c *QuestionController) Reload(ctx *gin.Context) {
	set, err := c.Questions.Reload(ctx.Request.Context())
	if err != nil {
		logger.Log.Warn("manual question reload failed", zap.Error(err))
		respondError(ctx, err)
		return
	}

	util.Success(ctx, set)
}
