package controller

import (
	"net/http"

	"influence_survey/internal/service"
	"influence_survey/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Questions *service.QuestionService
}

func NewHealthController(questions *service.QuestionService) *HealthController {
	return &HealthController{Questions: questions}
}

// @Summary 健康检查
// @Description 检查服务状态与题库可用性
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	set, err := c.Questions.Questions(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Question data unavailable",
			Data: gin.H{
				"status":     "degraded",
				"components": gin.H{"questions": "down"},
			},
		})
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"questions": "up",
		},
		"questions":    len(set.Questions),
		"placeholders": set.Placeholders,
		"loadedAt":     set.LoadedAt,
	})
}
