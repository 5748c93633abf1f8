package ingest

import (
	"errors"
	"unicode/utf8"
)

var errNoColumns = errors.New("table has no columns")

// ColumnMeanLengths 每列单元格的平均字符数（按 rune 计，缺失视为空串）
func ColumnMeanLengths(g Grid) []float64 {
	width := g.Width()
	means := make([]float64, width)
	if len(g) == 0 {
		return means
	}
	for col := 0; col < width; col++ {
		total := 0
		for _, row := range g {
			total += utf8.RuneCountInString(row[col])
		}
		means[col] = float64(total) / float64(len(g))
	}
	return means
}

// SelectQuestionColumn 选平均长度最大的列作为题干列，并列时取最靠前者
func SelectQuestionColumn(g Grid) (int, error) {
	means := ColumnMeanLengths(g)
	if len(means) == 0 {
		return -1, errNoColumns
	}
	best := 0
	for i := 1; i < len(means); i++ {
		if means[i] > means[best] {
			best = i
		}
	}
	return best, nil
}
