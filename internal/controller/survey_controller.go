package controller

import (
	"errors"
	"net/http"

	"influence_survey/internal/model"
	"influence_survey/internal/service"
	"influence_survey/internal/util"
	"influence_survey/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SurveyController 服务端渲染的问卷页面
type SurveyController struct {
	Survey *service.SurveyService
	Title  string
}

func NewSurveyController(survey *service.SurveyService, title string) *SurveyController {
	return &SurveyController{Survey: survey, Title: title}
}

type surveyTab struct {
	Main      model.MainCategory
	Label     string
	Questions []model.QuestionRecord
}

type surveyPage struct {
	Title     string
	Name      string
	MinScore  int
	MaxScore  int
	Tabs      []surveyTab
	Scores    map[int]int
	Error     string
	FormError string
	Result    *model.Submission
}

func (c *SurveyController) newPage(name string) *surveyPage {
	if name == "" {
		name = c.Survey.DefaultName()
	}
	scores := make(map[int]int, model.TotalQuestions)
	for pos := 1; pos <= model.TotalQuestions; pos++ {
		scores[pos] = model.DefaultScore
	}
	return &surveyPage{
		Title:    c.Title,
		Name:     name,
		MinScore: model.MinScore,
		MaxScore: model.MaxScore,
		Scores:   scores,
	}
}

// Index 渲染问卷表单
func (c *SurveyController) Index(ctx *gin.Context) {
	page := c.newPage("")
	if !c.fillTabs(ctx, page) {
		ctx.HTML(http.StatusServiceUnavailable, "index.html", page)
		return
	}
	ctx.HTML(http.StatusOK, "index.html", page)
}

// Submit 处理表单提交，结果显示在表单下方
func (c *SurveyController) Submit(ctx *gin.Context) {
	page := c.newPage(ctx.PostForm(util.FormName))
	if !c.fillTabs(ctx, page) {
		ctx.HTML(http.StatusServiceUnavailable, "index.html", page)
		return
	}

	raw := make(map[int]int, model.TotalQuestions)
	for pos := 1; pos <= model.TotalQuestions; pos++ {
		v, ok := ctx.GetPostForm(util.ScoreFieldName(pos))
		if !ok {
			continue
		}
		raw[pos] = util.MustParseInt(v)
		page.Scores[pos] = raw[pos]
	}

	sub, err := c.Survey.Submit(ctx.Request.Context(), page.Name, raw)
	switch {
	case err == nil:
		page.Name = sub.Name
		page.Result = sub
		ctx.HTML(http.StatusOK, "index.html", page)
	case errors.Is(err, util.ErrInvalidScores):
		page.FormError = util.MsgInvalidScores
		ctx.HTML(http.StatusBadRequest, "index.html", page)
	case errors.Is(err, util.ErrDataUnavailable), errors.Is(err, util.ErrInsufficientData):
		page.Error = util.MsgDataUnavailable
		ctx.HTML(http.StatusServiceUnavailable, "index.html", page)
	default:
		logger.Log.Error("survey submission failed", zap.Error(err))
		page.Error = http.StatusText(http.StatusInternalServerError)
		ctx.HTML(http.StatusInternalServerError, "index.html", page)
	}
}

// fillTabs 按主类型分页；题库不可用时设置错误信息并返回 false
func (c *SurveyController) fillTabs(ctx *gin.Context, page *surveyPage) bool {
	set, err := c.Survey.Questions.Questions(ctx.Request.Context())
	if err != nil {
		logger.Log.Warn("question set unavailable", zap.Error(err))
		page.Error = util.MsgDataUnavailable
		return false
	}
	for _, g := range model.CategoryStructure {
		page.Tabs = append(page.Tabs, surveyTab{Main: g.Main, Label: g.Label, Questions: set.ByMain(g.Main)})
	}
	return true
}
