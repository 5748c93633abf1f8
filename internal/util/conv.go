package util

import (
	"strconv"
	"strings"
)

// MustParseInt 将字符串转换为整数，解析失败时返回 0
func MustParseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// ScoreFieldName 表单中题目位置对应的字段名，如 q12
func ScoreFieldName(position int) string {
	return FormScorePrefix + strconv.Itoa(position)
}
