package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"influence_survey/internal/ingest"
	"influence_survey/internal/service"
	"influence_survey/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writeQuestions(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("리더십 영향력 진단,\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d,나는 요청을 할 때 논리적인 근거를 제시한다 %d\n", i, i)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

type testServer struct {
	router    *gin.Engine
	questions *service.QuestionService
	survey    *service.SurveyService
}

func newTestServer(path string) *testServer {
	questions := service.NewQuestionService(&service.LocalSourceProvider{Path: path}, ingest.DefaultOptions())
	survey := service.NewSurveyService(questions, true, "Guest")

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	sc := NewSurveyController(survey, "리더십 영향력 진단")
	qc := NewQuestionController(questions, survey)
	sub := NewSubmissionController(survey)
	hc := NewHealthController(questions)

	r.GET("/", sc.Index)
	r.POST("/", sc.Submit)
	api := r.Group("/api")
	api.GET("/health", hc.HealthCheck)
	api.GET("/structure", qc.Structure)
	api.GET("/questions", qc.List)
	api.POST("/questions/reload", qc.Reload)
	api.POST("/submissions", sub.Create)

	return &testServer{router: r, questions: questions, survey: survey}
}

func scoresJSON(v int) string {
	parts := make([]string, 0, 44)
	for pos := 1; pos <= 44; pos++ {
		parts = append(parts, fmt.Sprintf("%q:%d", fmt.Sprint(pos), v))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
