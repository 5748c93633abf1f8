package service

import (
	"fmt"
	"sort"
	"strings"

	"influence_survey/internal/model"
	"influence_survey/internal/util"
)

type AggregateOptions struct {
	IncludePlaceholders bool
}

type meanAcc struct {
	sum   int
	count int
}

func (a meanAcc) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.sum) / float64(a.count)
}

// BuildScores 校验每个位置恰有一个 1..5 的分数，并按位置排序
func BuildScores(raw map[int]int) ([]model.ScoreEntry, error) {
	var problems []string
	for pos := 1; pos <= model.TotalQuestions; pos++ {
		v, ok := raw[pos]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%d: missing", pos))
		case v < model.MinScore || v > model.MaxScore:
			problems = append(problems, fmt.Sprintf("%d: %d out of range", pos, v))
		}
	}
	var unknown []int
	for pos := range raw {
		if pos < 1 || pos > model.TotalQuestions {
			unknown = append(unknown, pos)
		}
	}
	sort.Ints(unknown)
	for _, pos := range unknown {
		problems = append(problems, fmt.Sprintf("%d: unknown position", pos))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidScores, strings.Join(problems, ", "))
	}

	scores := make([]model.ScoreEntry, 0, model.TotalQuestions)
	for pos := 1; pos <= model.TotalQuestions; pos++ {
		scores = append(scores, model.ScoreEntry{QuestionPosition: pos, Value: raw[pos]})
	}
	return scores, nil
}

// Aggregate 计算细分战术与主类型均分。
// 主类型均分直接取其全部原始分数的平均，而不是细分均分的平均。
func Aggregate(records []model.QuestionRecord, scores []model.ScoreEntry, opts AggregateOptions) model.AggregateResult {
	byPos := make(map[int]int, len(scores))
	for _, s := range scores {
		byPos[s.QuestionPosition] = s.Value
	}

	subs := make(map[string]*meanAcc)
	mains := make(map[model.MainCategory]*meanAcc)
	for _, g := range model.CategoryStructure {
		mains[g.Main] = &meanAcc{}
		for _, s := range g.Subs {
			subs[s.Name] = &meanAcc{}
		}
	}

	for _, r := range records {
		if r.Placeholder && !opts.IncludePlaceholders {
			continue
		}
		v, ok := byPos[r.Position]
		if !ok {
			continue
		}
		if acc, ok := subs[r.SubCategory]; ok {
			acc.sum += v
			acc.count++
		}
		if acc, ok := mains[r.MainCategory]; ok {
			acc.sum += v
			acc.count++
		}
	}

	var res model.AggregateResult
	for _, g := range model.CategoryStructure {
		for _, s := range g.Subs {
			acc := subs[s.Name]
			res.SubCategoryMeans = append(res.SubCategoryMeans, model.CategoryMean{
				Main:  g.Main,
				Name:  s.Name,
				Label: s.Label,
				Mean:  acc.mean(),
				Count: acc.count,
			})
		}
		acc := mains[g.Main]
		res.MainCategoryMeans = append(res.MainCategoryMeans, model.CategoryMean{
			Main:  g.Main,
			Name:  string(g.Main),
			Label: g.Label,
			Mean:  acc.mean(),
			Count: acc.count,
		})
	}
	return res
}
