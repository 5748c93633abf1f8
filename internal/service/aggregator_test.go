package service

import (
	"testing"

	"influence_survey/internal/model"
	"influence_survey/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScores(t *testing.T, raw map[int]int) []model.ScoreEntry {
	t.Helper()
	scores, err := BuildScores(raw)
	require.NoError(t, err)
	return scores
}

func TestAggregate_AllEqual(t *testing.T) {
	res := Aggregate(mappedRecords(0), mustScores(t, uniformScores(3)), AggregateOptions{IncludePlaceholders: true})

	require.Len(t, res.SubCategoryMeans, 11)
	require.Len(t, res.MainCategoryMeans, 3)
	for _, m := range res.SubCategoryMeans {
		assert.Equal(t, 3.0, m.Mean, m.Name)
		assert.Equal(t, 4, m.Count)
	}
	for _, m := range res.MainCategoryMeans {
		assert.Equal(t, 3.0, m.Mean, m.Name)
	}
}

func TestAggregate_DeclarationOrder(t *testing.T) {
	res := Aggregate(mappedRecords(0), mustScores(t, uniformScores(2)), AggregateOptions{IncludePlaceholders: true})

	var names []string
	for _, m := range res.SubCategoryMeans {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"Persuasion", "InterestExplanation", "Exchange",
		"InspirationalAppeal", "Consultation", "IngratiatingTactics", "PersonalAppeal", "Collaboration",
		"Legitimating", "Pressure", "Coalition",
	}, names)

	assert.Equal(t, model.Rational, res.MainCategoryMeans[0].Main)
	assert.Equal(t, model.Affiliative, res.MainCategoryMeans[1].Main)
	assert.Equal(t, model.Coercive, res.MainCategoryMeans[2].Main)
	assert.Equal(t, []int{12, 20, 12}, []int{
		res.MainCategoryMeans[0].Count,
		res.MainCategoryMeans[1].Count,
		res.MainCategoryMeans[2].Count,
	})
}

// 组大小相等时原始分均值与细分均值的均值一致
func TestAggregate_EqualGroupsBothMethodsAgree(t *testing.T) {
	raw := uniformScores(3)
	for pos := 1; pos <= 4; pos++ {
		raw[pos] = 5 // Persuasion
	}
	for pos := 9; pos <= 12; pos++ {
		raw[pos] = 1 // Exchange
	}

	res := Aggregate(mappedRecords(0), mustScores(t, raw), AggregateOptions{IncludePlaceholders: true})

	persuasion, _ := res.SubMean("Persuasion")
	interest, _ := res.SubMean("InterestExplanation")
	exchange, _ := res.SubMean("Exchange")
	assert.Equal(t, []float64{5, 3, 1}, []float64{persuasion, interest, exchange})

	rational, ok := res.MainMean(model.Rational)
	require.True(t, ok)
	assert.InDelta(t, 3.0, rational, 1e-9)
	assert.InDelta(t, (persuasion+interest+exchange)/3, rational, 1e-9)
}

// 排除占位题后组大小不等，主类型均分以原始分数为准
func TestAggregate_MainMeanUsesRawScores(t *testing.T) {
	recs := mappedRecords(39) // 38 道真实题目，39..44 为占位
	raw := uniformScores(3)
	for pos := 33; pos <= 36; pos++ {
		raw[pos] = 5 // Legitimating
	}
	for pos := 37; pos <= 44; pos++ {
		raw[pos] = 1 // Pressure + Coalition
	}

	res := Aggregate(recs, mustScores(t, raw), AggregateOptions{IncludePlaceholders: false})

	legit, _ := res.SubMean("Legitimating")
	pressure, _ := res.SubMean("Pressure")
	assert.Equal(t, 5.0, legit)
	assert.Equal(t, 1.0, pressure)

	coercive := res.MainCategoryMeans[2]
	assert.Equal(t, 6, coercive.Count)
	assert.InDelta(t, 22.0/6.0, coercive.Mean, 1e-9)
	assert.NotEqual(t, (legit+pressure)/2, coercive.Mean)

	coalition := res.SubCategoryMeans[10]
	assert.Equal(t, "Coalition", coalition.Name)
	assert.Zero(t, coalition.Count)
	assert.Zero(t, coalition.Mean)
}

func TestAggregate_PlaceholdersIncludedByPolicy(t *testing.T) {
	recs := mappedRecords(41)
	raw := uniformScores(4)
	for pos := 41; pos <= 44; pos++ {
		raw[pos] = 2
	}

	res := Aggregate(recs, mustScores(t, raw), AggregateOptions{IncludePlaceholders: true})

	coalition, _ := res.SubMean("Coalition")
	assert.Equal(t, 2.0, coalition)
	coercive, _ := res.MainMean(model.Coercive)
	assert.InDelta(t, 40.0/12.0, coercive, 1e-9)
}

func TestBuildScores(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		scores, err := BuildScores(uniformScores(5))
		require.NoError(t, err)
		require.Len(t, scores, 44)
		assert.Equal(t, model.ScoreEntry{QuestionPosition: 44, Value: 5}, scores[43])
	})

	t.Run("placeholders must still be scored", func(t *testing.T) {
		raw := uniformScores(3)
		delete(raw, 42)
		_, err := BuildScores(raw)
		assert.ErrorIs(t, err, util.ErrInvalidScores)
		assert.Contains(t, err.Error(), "42: missing")
	})

	t.Run("out of range", func(t *testing.T) {
		raw := uniformScores(3)
		raw[7] = 6
		raw[8] = 0
		_, err := BuildScores(raw)
		assert.ErrorIs(t, err, util.ErrInvalidScores)
	})

	t.Run("problems listed in position order", func(t *testing.T) {
		raw := uniformScores(3)
		delete(raw, 2)
		delete(raw, 10)
		raw[30] = 9
		raw[50] = 3
		raw[-1] = 3
		_, err := BuildScores(raw)
		require.ErrorIs(t, err, util.ErrInvalidScores)
		assert.Equal(t, "invalid scores: 2: missing, 10: missing, 30: 9 out of range, -1: unknown position, 50: unknown position", err.Error())
	})

	t.Run("unknown position", func(t *testing.T) {
		raw := uniformScores(3)
		raw[45] = 3
		_, err := BuildScores(raw)
		assert.ErrorIs(t, err, util.ErrInvalidScores)
	})
}
