package service

import (
	"fmt"

	"influence_survey/internal/model"
	"influence_survey/internal/util"
)

// AssignCategories 按位置为 44 道题附加主类型与细分战术，不读取题干内容
func AssignCategories(records []model.QuestionRecord) ([]model.QuestionRecord, error) {
	if len(records) != model.TotalQuestions {
		return nil, fmt.Errorf("%w: category mapping needs %d questions, got %d", util.ErrInsufficientData, model.TotalQuestions, len(records))
	}

	assignments := model.PositionAssignments()
	out := make([]model.QuestionRecord, len(records))
	for i, r := range records {
		a := assignments[i]
		r.Position = i + 1
		r.MainCategory = a.Main
		r.SubCategory = a.Sub.Name
		r.SubLabel = a.Sub.Label
		out[i] = r
	}
	return out, nil
}
