package controller

import (
	"fmt"
	"strconv"

	"influence_survey/internal/service"
	"influence_survey/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Survey *service.SurveyService
}

func NewSubmissionController(survey *service.SurveyService) *SubmissionController {
	return &SubmissionController{Survey: survey}
}

// SubmissionRequest 提交请求；scores 的键为题目位置
type SubmissionRequest struct {
	Name   string         `json:"name" example:"Guest"`
	Scores map[string]int `json:"scores" binding:"required"`
}

// @Summary 提交问卷
// @Description 校验 44 个分数并返回各分类平均分与图表数据，不做持久化
// @Tags 问卷
// @Accept json
// @Produce json
// @Param body body SubmissionRequest true "姓名与分数"
// @Success 201 {object} util.Response{data=model.Submission}
// @Failure 400 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /submissions [post]
func (c *SubmissionController) Create(ctx *gin.Context) {
	var req SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	raw := make(map[int]int, len(req.Scores))
	for k, v := range req.Scores {
		pos, err := strconv.Atoi(k)
		if err != nil {
			util.BadRequest(ctx, fmt.Sprintf("invalid question position %q", k))
			return
		}
		raw[pos] = v
	}

	sub, err := c.Survey.Submit(ctx.Request.Context(), req.Name, raw)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, sub)
}
