package ingest

import (
	"context"
	"fmt"

	"influence_survey/internal/config"
	"influence_survey/internal/model"
	"influence_survey/internal/util"
	"influence_survey/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Options struct {
	MinQuestionLength int
	ShortfallPolicy   string
	Target            int
}

func DefaultOptions() Options {
	return Options{
		MinQuestionLength: DefaultMinQuestionLength,
		ShortfallPolicy:   config.ShortfallPad,
		Target:            model.TotalQuestions,
	}
}

// Result 流水线各阶段的产出，供日志与指标使用
type Result struct {
	Records      []model.QuestionRecord
	Format       string
	Encoding     string
	Column       int
	ColumnMeans  []float64
	RawRows      int
	KeptRows     int
	Placeholders int
}

// Run 依次执行全部阶段；任何解码失败都归为 ErrDataUnavailable
func Run(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if opts.Target <= 0 {
		opts.Target = model.TotalQuestions
	}

	_, span := tracing.Start(ctx, "ingest.decode", attribute.Int("bytes", len(data)))
	table, err := Decode(data)
	tracing.End(span, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDataUnavailable, err)
	}

	grid := Tabulate(table.Rows)
	res := &Result{
		Format:   table.Format,
		Encoding: table.Encoding,
		RawRows:  len(grid),
	}

	_, span = tracing.Start(ctx, "ingest.select_column", attribute.Int("columns", grid.Width()))
	res.ColumnMeans = ColumnMeanLengths(grid)
	res.Column, err = SelectQuestionColumn(grid)
	tracing.End(span, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDataUnavailable, err)
	}

	texts := FilterNoiseRows(grid, res.Column, opts.MinQuestionLength)
	res.KeptRows = len(texts)

	_, span = tracing.Start(ctx, "ingest.normalize", attribute.Int("kept_rows", len(texts)))
	res.Records, res.Placeholders, err = NormalizeCount(Renumber(texts), opts.Target, opts.ShortfallPolicy != config.ShortfallError)
	tracing.End(span, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}
