// Package web 内嵌的 HTML 模板
package web

import (
	"embed"
	"html/template"

	"influence_survey/internal/util"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"add":        func(a, b int) int { return a + b },
	"scoreField": util.ScoreFieldName,
}

// Templates 解析全部模板，供 gin.Engine.SetHTMLTemplate 使用
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
