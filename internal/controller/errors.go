package controller

import (
	"errors"

	"influence_survey/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为统一响应
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrDataUnavailable), errors.Is(err, util.ErrInsufficientData):
		util.ServiceUnavailable(ctx, util.MsgDataUnavailable)
	case errors.Is(err, util.ErrInvalidScores):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
