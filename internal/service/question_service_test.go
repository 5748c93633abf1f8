package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"influence_survey/internal/config"
	"influence_survey/internal/ingest"
	"influence_survey/internal/model"
	"influence_survey/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_LoadsAndMaps(t *testing.T) {
	svc := newTestQuestionService(newMemSource(questionCSV(44)))

	set, err := svc.Questions(context.Background())
	require.NoError(t, err)

	require.Len(t, set.Questions, model.TotalQuestions)
	assert.Equal(t, 1, set.QuestionColumn)
	assert.Zero(t, set.Placeholders)
	assert.NotEmpty(t, set.Source.Hash)
	assert.Equal(t, model.Rational, set.Questions[0].MainCategory)
	assert.Equal(t, "Coalition", set.Questions[43].SubCategory)
}

func TestQuestionService_MemoizesWhileSourceUnchanged(t *testing.T) {
	src := newMemSource(questionCSV(44))
	svc := newTestQuestionService(src)

	first, err := svc.Questions(context.Background())
	require.NoError(t, err)
	second, err := svc.Questions(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, src.readCount())
}

func TestQuestionService_TouchWithSameContentKeepsSet(t *testing.T) {
	src := newMemSource(questionCSV(44))
	svc := newTestQuestionService(src)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return time.Unix(int64(calls), 0)
	}

	first, err := svc.Questions(context.Background())
	require.NoError(t, err)

	src.touch()
	second, err := svc.Questions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, src.readCount(), "metadata change forces a read")
	assert.Equal(t, first.LoadedAt, second.LoadedAt, "same hash must not rebuild")
	assert.Equal(t, first.Questions, second.Questions)
	assert.False(t, first.Source.ModTime.Equal(second.Source.ModTime))
}

func TestQuestionService_ContentChangeReloads(t *testing.T) {
	src := newMemSource(questionCSV(44))
	svc := newTestQuestionService(src)

	first, err := svc.Questions(context.Background())
	require.NoError(t, err)

	src.write(questionCSV(40))
	second, err := svc.Questions(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.Source.Hash, second.Source.Hash)
	assert.Equal(t, 4, second.Placeholders)
	assert.True(t, second.Questions[43].Placeholder)
	assert.Zero(t, first.Placeholders, "published set must stay untouched")
}

func TestQuestionService_FailureIsCachedUntilSourceChanges(t *testing.T) {
	src := newMemSource(string([]byte{0xff, 0xfe, 0x80, 0x81}))
	svc := newTestQuestionService(src)

	_, err := svc.Questions(context.Background())
	assert.ErrorIs(t, err, util.ErrDataUnavailable)
	_, err = svc.Questions(context.Background())
	assert.ErrorIs(t, err, util.ErrDataUnavailable)
	assert.Equal(t, 1, src.readCount())

	src.write(questionCSV(44))
	set, err := svc.Questions(context.Background())
	require.NoError(t, err)
	assert.Len(t, set.Questions, 44)
}

func TestQuestionService_MissingSource(t *testing.T) {
	src := newMemSource(questionCSV(44))
	svc := newTestQuestionService(src)
	_, err := svc.Questions(context.Background())
	require.NoError(t, err)

	src.fail(errGone)
	set, err := svc.Questions(context.Background())
	assert.Nil(t, set)
	assert.ErrorIs(t, err, util.ErrDataUnavailable)
}

func TestQuestionService_ErrorPolicy(t *testing.T) {
	opts := ingest.DefaultOptions()
	opts.ShortfallPolicy = config.ShortfallError
	svc := NewQuestionService(newMemSource(questionCSV(40)), opts)

	_, err := svc.Questions(context.Background())
	assert.ErrorIs(t, err, util.ErrInsufficientData)
}

func TestQuestionService_SetOptionsInvalidates(t *testing.T) {
	src := newMemSource(questionCSV(40))
	svc := newTestQuestionService(src)
	_, err := svc.Questions(context.Background())
	require.NoError(t, err)

	opts := ingest.DefaultOptions()
	opts.ShortfallPolicy = config.ShortfallError
	svc.SetOptions(opts)

	_, err = svc.Questions(context.Background())
	assert.ErrorIs(t, err, util.ErrInsufficientData)
	assert.Equal(t, 2, src.readCount())
}

func TestQuestionService_Reload(t *testing.T) {
	src := newMemSource(questionCSV(44))
	svc := newTestQuestionService(src)
	_, err := svc.Questions(context.Background())
	require.NoError(t, err)

	_, err = svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.readCount())
}

func TestLocalSourceProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(questionCSV(44)), 0644))

	p := &LocalSourceProvider{Path: path}
	fp, err := p.Stat(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(len(questionCSV(44))), fp.Size)
	assert.Equal(t, path, p.LocalPath())

	svc := newTestQuestionService(p)
	set, err := svc.Questions(context.Background())
	require.NoError(t, err)
	assert.Len(t, set.Questions, 44)

	_, err = (&LocalSourceProvider{Path: filepath.Join(dir, "missing.xlsx")}).Stat(context.Background())
	assert.Error(t, err)
	_, err = (&LocalSourceProvider{Path: dir}).Stat(context.Background())
	assert.Error(t, err)
}

func TestNewSourceProvider_DefaultsToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = util.StorageLocal
	cfg.Survey.Source = "data.xlsx"

	p, err := NewSourceProvider(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalSourceProvider{}, p)
}
