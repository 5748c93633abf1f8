package service

import (
	"context"
	"strings"
	"sync/atomic"

	"influence_survey/internal/model"
	"influence_survey/pkg/monitoring"

	"github.com/google/uuid"
)

type SurveyService struct {
	Questions *QuestionService

	includePlaceholders atomic.Bool
	defaultName         atomic.Value
}

func NewSurveyService(questions *QuestionService, includePlaceholders bool, defaultName string) *SurveyService {
	s := &SurveyService{Questions: questions}
	s.SetPolicy(includePlaceholders, defaultName)
	return s
}

// SetPolicy 更新计分策略（配置热更新）
func (s *SurveyService) SetPolicy(includePlaceholders bool, defaultName string) {
	s.includePlaceholders.Store(includePlaceholders)
	if strings.TrimSpace(defaultName) == "" {
		defaultName = "Guest"
	}
	s.defaultName.Store(defaultName)
}

func (s *SurveyService) DefaultName() string {
	return s.defaultName.Load().(string)
}

func (s *SurveyService) IncludePlaceholders() bool {
	return s.includePlaceholders.Load()
}

// StructureEntry 细分战术及其题目位置
type StructureEntry struct {
	Main      model.MainCategory `json:"main"`
	MainLabel string             `json:"mainLabel"`
	Name      string             `json:"name"`
	Label     string             `json:"label"`
	Positions []int              `json:"positions"`
}

func (s *SurveyService) Structure() []StructureEntry {
	var out []StructureEntry
	pos := 1
	for _, g := range model.CategoryStructure {
		for _, sub := range g.Subs {
			e := StructureEntry{Main: g.Main, MainLabel: g.Label, Name: sub.Name, Label: sub.Label}
			for i := 0; i < model.QuestionsPerSubCategory; i++ {
				e.Positions = append(e.Positions, pos)
				pos++
			}
			out = append(out, e)
		}
	}
	return out
}

// Submit 校验一次完整提交并计算结果，不做任何持久化
func (s *SurveyService) Submit(ctx context.Context, name string, raw map[int]int) (*model.Submission, error) {
	set, err := s.Questions.Questions(ctx)
	if err != nil {
		monitoring.SubmissionCounter.WithLabelValues("unavailable").Inc()
		return nil, err
	}

	scores, err := BuildScores(raw)
	if err != nil {
		monitoring.SubmissionCounter.WithLabelValues("invalid").Inc()
		return nil, err
	}

	result := Aggregate(set.Questions, scores, AggregateOptions{IncludePlaceholders: s.IncludePlaceholders()})

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.DefaultName()
	}

	monitoring.SubmissionCounter.WithLabelValues("success").Inc()
	return &model.Submission{
		ID:     uuid.New().String(),
		Name:   name,
		Result: result,
		Charts: model.NewChartData(result),
	}, nil
}
