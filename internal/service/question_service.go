package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"influence_survey/internal/ingest"
	"influence_survey/internal/model"
	"influence_survey/internal/util"
	"influence_survey/pkg/logger"
	"influence_survey/pkg/monitoring"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// QuestionService 题库的显式缓存。
// 每次访问先比较来源元数据（修改时间、大小、ETag）；
// 元数据变化时读取内容并比较 BLAKE2b 哈希，哈希不同才重新解析。
// 失败结果同样按指纹缓存，未修改的坏文件不会被反复解析。
type QuestionService struct {
	source SourceProvider

	mu      sync.RWMutex
	opts    ingest.Options
	loaded  bool
	fp      model.SourceFingerprint
	current *model.QuestionSet
	lastErr error

	now func() time.Time
}

func NewQuestionService(source SourceProvider, opts ingest.Options) *QuestionService {
	return &QuestionService{
		source: source,
		opts:   opts,
		now:    time.Now,
	}
}

// Questions 返回当前题库；失败时错误均可用 errors.Is 判定为 ErrDataUnavailable 或 ErrInsufficientData
func (s *QuestionService) Questions(ctx context.Context) (*model.QuestionSet, error) {
	fp, err := s.source.Stat(ctx)
	if err != nil {
		err = fmt.Errorf("%w: stat source: %v", util.ErrDataUnavailable, err)
		s.mu.Lock()
		s.reset()
		s.mu.Unlock()
		monitoring.QuestionSetLoads.WithLabelValues("unavailable").Inc()
		return nil, err
	}

	s.mu.RLock()
	if s.loaded && s.fp.SameStat(fp) {
		set, err := s.current, s.lastErr
		s.mu.RUnlock()
		return set, err
	}
	s.mu.RUnlock()

	return s.reload(ctx, fp)
}

func (s *QuestionService) reload(ctx context.Context, fp model.SourceFingerprint) (*model.QuestionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && s.fp.SameStat(fp) {
		return s.current, s.lastErr
	}

	data, err := s.source.Read(ctx)
	if err != nil {
		s.reset()
		monitoring.QuestionSetLoads.WithLabelValues("unavailable").Inc()
		return nil, fmt.Errorf("%w: read source: %v", util.ErrDataUnavailable, err)
	}
	fp.Hash = contentHash(data)

	if s.loaded && s.fp.Hash == fp.Hash {
		s.fp = fp
		if s.current != nil {
			// 已发布的题库不可修改，只替换副本
			next := *s.current
			next.Source = fp
			s.current = &next
		}
		monitoring.QuestionSetLoads.WithLabelValues("unchanged").Inc()
		logger.Log.Debug("question source touched but content unchanged", zap.String("source", fp.Name))
		return s.current, s.lastErr
	}

	set, err := s.build(ctx, data, fp)
	s.loaded, s.fp, s.current, s.lastErr = true, fp, set, err
	if err != nil {
		monitoring.QuestionSetLoads.WithLabelValues("failure").Inc()
		logger.Log.Error("failed to load question set", zap.String("source", fp.Name), zap.Error(err))
		return nil, err
	}

	monitoring.QuestionSetLoads.WithLabelValues("success").Inc()
	monitoring.QuestionSetPlaceholders.Set(float64(set.Placeholders))
	return set, nil
}

func (s *QuestionService) build(ctx context.Context, data []byte, fp model.SourceFingerprint) (*model.QuestionSet, error) {
	res, err := ingest.Run(ctx, data, s.opts)
	if err != nil {
		return nil, err
	}
	records, err := AssignCategories(res.Records)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("question set loaded",
		zap.String("source", fp.Name),
		zap.String("format", res.Format),
		zap.String("encoding", res.Encoding),
		zap.Int("column", res.Column),
		zap.Int("raw_rows", res.RawRows),
		zap.Int("kept_rows", res.KeptRows),
		zap.Int("placeholders", res.Placeholders),
	)
	if res.Placeholders > 0 {
		logger.Log.Warn("question source had fewer rows than required, padded with placeholders",
			zap.Int("placeholders", res.Placeholders))
	}

	return &model.QuestionSet{
		Questions:      records,
		Source:         fp,
		QuestionColumn: res.Column,
		Placeholders:   res.Placeholders,
		LoadedAt:       s.now(),
	}, nil
}

// reset 调用方需持有写锁
func (s *QuestionService) reset() {
	s.loaded = false
	s.fp = model.SourceFingerprint{}
	s.current = nil
	s.lastErr = nil
}

// Invalidate 丢弃缓存，下次访问重新读取来源
func (s *QuestionService) Invalidate() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
}

// Reload 强制重新读取来源并返回新的题库
func (s *QuestionService) Reload(ctx context.Context) (*model.QuestionSet, error) {
	s.Invalidate()
	return s.Questions(ctx)
}

// SetOptions 更新解析策略（配置热更新），并使缓存失效
func (s *QuestionService) SetOptions(opts ingest.Options) {
	s.mu.Lock()
	s.opts = opts
	s.reset()
	s.mu.Unlock()
}

func (s *QuestionService) Options() ingest.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// Source 题库来源，供文件监听使用
func (s *QuestionService) Source() SourceProvider {
	return s.source
}

func contentHash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
