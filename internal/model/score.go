package model

const (
	MinScore     = 1
	MaxScore     = 5
	DefaultScore = 3
)

// ScoreEntry 单题得分，仅在一次提交内存在
type ScoreEntry struct {
	QuestionPosition int `json:"questionPosition"`
	Value            int `json:"value"`
}

// CategoryMean 某一分类的平均分
type CategoryMean struct {
	Main  MainCategory `json:"main"`
	Name  string       `json:"name"`
	Label string       `json:"label"`
	Mean  float64      `json:"mean"`
	Count int          `json:"count"`
}

// AggregateResult 按分类结构声明顺序排列
type AggregateResult struct {
	SubCategoryMeans  []CategoryMean `json:"subCategoryMeans"`
	MainCategoryMeans []CategoryMean `json:"mainCategoryMeans"`
}

func (r AggregateResult) SubMean(name string) (float64, bool) {
	for _, m := range r.SubCategoryMeans {
		if m.Name == name {
			return m.Mean, true
		}
	}
	return 0, false
}

func (r AggregateResult) MainMean(main MainCategory) (float64, bool) {
	for _, m := range r.MainCategoryMeans {
		if m.Main == main {
			return m.Mean, true
		}
	}
	return 0, false
}

// SubMeans 以 map 形式返回细分战术均分
func (r AggregateResult) SubMeans() map[string]float64 {
	out := make(map[string]float64, len(r.SubCategoryMeans))
	for _, m := range r.SubCategoryMeans {
		out[m.Name] = m.Mean
	}
	return out
}

func (r AggregateResult) MainMeans() map[MainCategory]float64 {
	out := make(map[MainCategory]float64, len(r.MainCategoryMeans))
	for _, m := range r.MainCategoryMeans {
		out[m.Main] = m.Mean
	}
	return out
}
