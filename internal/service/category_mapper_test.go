package service

import (
	"testing"

	"influence_survey/internal/model"
	"influence_survey/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCategories_Layout(t *testing.T) {
	recs := mappedRecords(0)

	mains := make(map[model.MainCategory]map[string]bool)
	subCounts := make(map[string]int)
	for _, r := range recs {
		if mains[r.MainCategory] == nil {
			mains[r.MainCategory] = make(map[string]bool)
		}
		mains[r.MainCategory][r.SubCategory] = true
		subCounts[r.SubCategory]++
	}

	assert.Len(t, mains, 3)
	assert.Len(t, subCounts, 11)
	for name, n := range subCounts {
		assert.Equal(t, 4, n, name)
	}
	for _, g := range model.CategoryStructure {
		require.Len(t, mains[g.Main], len(g.Subs))
		for _, s := range g.Subs {
			assert.True(t, mains[g.Main][s.Name], "%s should belong to %s", s.Name, g.Main)
		}
	}
}

func TestAssignCategories_Positions(t *testing.T) {
	recs := mappedRecords(0)

	tests := []struct {
		pos  int
		main model.MainCategory
		sub  string
	}{
		{1, model.Rational, "Persuasion"},
		{4, model.Rational, "Persuasion"},
		{5, model.Rational, "InterestExplanation"},
		{12, model.Rational, "Exchange"},
		{13, model.Affiliative, "InspirationalAppeal"},
		{32, model.Affiliative, "Collaboration"},
		{33, model.Coercive, "Legitimating"},
		{44, model.Coercive, "Coalition"},
	}
	for _, tt := range tests {
		r := recs[tt.pos-1]
		assert.Equal(t, tt.main, r.MainCategory, "position %d", tt.pos)
		assert.Equal(t, tt.sub, r.SubCategory, "position %d", tt.pos)
		a, ok := model.AssignmentFor(tt.pos)
		require.True(t, ok)
		assert.Equal(t, tt.sub, a.Sub.Name)
	}
}

func TestAssignCategories_KeepsTextAndPlaceholderFlag(t *testing.T) {
	recs := mappedRecords(41)
	assert.Equal(t, "question 7", recs[6].Text)
	assert.False(t, recs[39].Placeholder)
	assert.True(t, recs[40].Placeholder)
	assert.Equal(t, "연합", recs[43].SubLabel)
}

func TestAssignCategories_WrongLength(t *testing.T) {
	_, err := AssignCategories(make([]model.QuestionRecord, 43))
	assert.ErrorIs(t, err, util.ErrInsufficientData)
}
