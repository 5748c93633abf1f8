package ingest

import (
	"fmt"

	"influence_survey/internal/model"
	"influence_survey/internal/util"
)

// PlaceholderText 补齐题目使用的占位文本
func PlaceholderText(position int) string {
	return fmt.Sprintf("[Placeholder question %d]", position)
}

// Renumber 按存活顺序从 1 开始重新编号
func Renumber(texts []string) []model.QuestionRecord {
	out := make([]model.QuestionRecord, len(texts))
	for i, t := range texts {
		out[i] = model.QuestionRecord{Position: i + 1, Text: t}
	}
	return out
}

// NormalizeCount 截断或补齐到 target 条；pad 为 false 时不足即报错
func NormalizeCount(records []model.QuestionRecord, target int, pad bool) ([]model.QuestionRecord, int, error) {
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("%w: no question rows survived filtering", util.ErrDataUnavailable)
	}
	if len(records) >= target {
		return records[:target:target], 0, nil
	}
	if !pad {
		return nil, 0, fmt.Errorf("%w: found %d of %d questions", util.ErrInsufficientData, len(records), target)
	}

	out := make([]model.QuestionRecord, len(records), target)
	copy(out, records)
	for pos := len(records) + 1; pos <= target; pos++ {
		out = append(out, model.QuestionRecord{
			Position:    pos,
			Text:        PlaceholderText(pos),
			Placeholder: true,
		})
	}
	return out, target - len(records), nil
}
