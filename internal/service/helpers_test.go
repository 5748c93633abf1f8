package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"influence_survey/internal/ingest"
	"influence_survey/internal/model"
)

// memSource 内存中的题库来源，记录读取次数
type memSource struct {
	mu      sync.Mutex
	data    []byte
	modTime time.Time
	statErr error
	reads   int
}

func newMemSource(data string) *memSource {
	return &memSource{data: []byte(data), modTime: time.Unix(1700000000, 0)}
}

func (m *memSource) Stat(ctx context.Context) (model.SourceFingerprint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statErr != nil {
		return model.SourceFingerprint{}, m.statErr
	}
	return model.SourceFingerprint{Name: "mem", ModTime: m.modTime, Size: int64(len(m.data))}, nil
}

func (m *memSource) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	return append([]byte(nil), m.data...), nil
}

func (m *memSource) LocalPath() string { return "" }

func (m *memSource) write(data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = []byte(data)
	m.modTime = m.modTime.Add(time.Second)
}

func (m *memSource) touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modTime = m.modTime.Add(time.Second)
}

func (m *memSource) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statErr = err
}

func (m *memSource) readCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

var errGone = errors.New("source gone")

// questionCSV 标题行 + n 道题
func questionCSV(n int) string {
	var b strings.Builder
	b.WriteString("리더십 진단,\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d,나는 구성원에게 근거를 들어 요청의 필요성을 설명한다 %d\n", i, i)
	}
	return b.String()
}

func newTestQuestionService(src SourceProvider) *QuestionService {
	return NewQuestionService(src, ingest.DefaultOptions())
}

// mappedRecords 44 道已分类题目，from 之后的位置为占位题
func mappedRecords(placeholderFrom int) []model.QuestionRecord {
	recs := make([]model.QuestionRecord, model.TotalQuestions)
	for i := range recs {
		pos := i + 1
		recs[i] = model.QuestionRecord{Position: pos, Text: fmt.Sprintf("question %d", pos)}
		if placeholderFrom > 0 && pos >= placeholderFrom {
			recs[i].Placeholder = true
		}
	}
	out, err := AssignCategories(recs)
	if err != nil {
		panic(err)
	}
	return out
}

func uniformScores(v int) map[int]int {
	raw := make(map[int]int, model.TotalQuestions)
	for pos := 1; pos <= model.TotalQuestions; pos++ {
		raw[pos] = v
	}
	return raw
}
