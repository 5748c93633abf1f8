package ingest

import "unicode/utf8"

// DefaultMinQuestionLength 短于此长度的行视为标题或表头
const DefaultMinQuestionLength = 10

// FilterNoiseRows 取出 col 列中足够长的文本，保持原有行序
func FilterNoiseRows(g Grid, col, minLen int) []string {
	out := make([]string, 0, len(g))
	for _, row := range g {
		if col < 0 || col >= len(row) {
			continue
		}
		text := row[col]
		if text == "" || utf8.RuneCountInString(text) < minLen {
			continue
		}
		out = append(out, text)
	}
	return out
}
