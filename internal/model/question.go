package model

import "time"

// QuestionRecord 题库中的一道题，分类只由位置推导
type QuestionRecord struct {
	Position     int          `json:"position"`
	Text         string       `json:"text"`
	MainCategory MainCategory `json:"mainCategory,omitempty"`
	SubCategory  string       `json:"subCategory,omitempty"`
	SubLabel     string       `json:"subLabel,omitempty"`
	Placeholder  bool         `json:"placeholder"`
}

// SourceFingerprint 题库来源文件的版本标识
type SourceFingerprint struct {
	Name    string    `json:"name"`
	ModTime time.Time `json:"modTime"`
	Size    int64     `json:"size"`
	ETag    string    `json:"etag,omitempty"`
	Hash    string    `json:"hash,omitempty"`
}

// SameStat 仅比较元数据（不含内容哈希）
func (f SourceFingerprint) SameStat(o SourceFingerprint) bool {
	return f.Name == o.Name && f.ModTime.Equal(o.ModTime) && f.Size == o.Size && f.ETag == o.ETag
}

// QuestionSet 一次加载得到的只读题库
type QuestionSet struct {
	Questions      []QuestionRecord  `json:"questions"`
	Source         SourceFingerprint `json:"source"`
	QuestionColumn int               `json:"questionColumn"`
	Placeholders   int               `json:"placeholders"`
	LoadedAt       time.Time         `json:"loadedAt"`
}

// ByMain 按主类型分组，保持位置顺序
func (s *QuestionSet) ByMain(main MainCategory) []QuestionRecord {
	var out []QuestionRecord
	for _, q := range s.Questions {
		if q.MainCategory == main {
			out = append(out, q)
		}
	}
	return out
}
