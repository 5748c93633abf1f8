// Package ingest turns an arbitrary question workbook into the fixed
// 44-question list: decode -> tabulate -> select column -> filter -> normalize.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	FormatSpreadsheet = "xlsx"
	FormatDelimited   = "delimited"
)

// Table 解码后的原始表格，不含表头语义
type Table struct {
	Rows     [][]string
	Format   string
	Encoding string
}

// TextEncoding 文本解码尝试顺序中的一项
type TextEncoding struct {
	Name     string
	Encoding encoding.Encoding
}

// TextEncodings 依次尝试：UTF-8（可带 BOM），再到 EUC-KR/CP949
var TextEncodings = []TextEncoding{
	{Name: "utf-8-sig", Encoding: unicode.UTF8BOM},
	{Name: "cp949", Encoding: korean.EUCKR},
}

var (
	errEmptyInput   = errors.New("empty input")
	errBinaryInput  = errors.New("binary content")
	errInvalidBytes = errors.New("invalid byte sequence")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode 先按电子表格解析，失败后按分隔文本依次尝试各编码
func Decode(data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyInput
	}

	var errs []error
	t, err := decodeSpreadsheet(data)
	if err == nil {
		return t, nil
	}
	errs = append(errs, fmt.Errorf("%s: %w", FormatSpreadsheet, err))

	for _, enc := range TextEncodings {
		t, err := decodeDelimited(data, enc)
		if err == nil {
			return t, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", enc.Name, err))
	}
	return nil, errors.Join(errs...)
}

func decodeSpreadsheet(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return &Table{Rows: rows, Format: FormatSpreadsheet}, nil
}

func decodeDelimited(data []byte, enc TextEncoding) (*Table, error) {
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, errBinaryInput
	}
	if enc.Encoding == unicode.UTF8BOM && !utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
		return nil, errInvalidBytes
	}

	decoded, _, err := transform.Bytes(enc.Encoding.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	// x/text 对非法字节输出替换字符而不是报错
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil, errInvalidBytes
	}
	text := string(bytes.TrimPrefix(decoded, utf8BOM))

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = detectDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, errEmptyInput
	}
	return &Table{Rows: rows, Format: FormatDelimited, Encoding: enc.Name}, nil
}

// delimiterSampleLines 推断分隔符时检查的非空行数
const delimiterSampleLines = 20

// detectDelimiter 在前若干个非空行中为每个候选分隔符计分：
// 依次比较出现次数一致的行数、出现过的行数、总次数，仍相同时按 ',' ';' '\t' 的顺序。
// 标题行等不含分隔符的行因此不会决定结果。
func detectDelimiter(text string) rune {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
		if len(lines) == delimiterSampleLines {
			break
		}
	}

	best, bestConsistent, bestPresent, bestTotal := ',', 0, 0, 0
	for _, d := range []rune{',', ';', '\t'} {
		freq := make(map[int]int)
		present, total := 0, 0
		for _, l := range lines {
			if n := strings.Count(l, string(d)); n > 0 {
				freq[n]++
				present++
				total += n
			}
		}
		consistent := 0
		for _, c := range freq {
			if c > consistent {
				consistent = c
			}
		}
		better := consistent > bestConsistent ||
			(consistent == bestConsistent && present > bestPresent) ||
			(consistent == bestConsistent && present == bestPresent && total > bestTotal)
		if better {
			best, bestConsistent, bestPresent, bestTotal = d, consistent, present, total
		}
	}
	return best
}
