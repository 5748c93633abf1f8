package util

import "errors"

var (
	// ErrDataUnavailable 题库文件缺失、无法解码或过滤后为空
	ErrDataUnavailable = errors.New("question data unavailable")
	// ErrInsufficientData 有效题目不足 44 且策略为 error
	ErrInsufficientData = errors.New("insufficient question data")
	// ErrInvalidScores 提交的分数缺失或越界
	ErrInvalidScores = errors.New("invalid scores")
)
