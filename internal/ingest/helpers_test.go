package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func questionText(i int) string {
	return fmt.Sprintf("나는 상대방에게 논리적인 근거를 들어 설득한다 (%d)", i)
}

// sampleRows 生成“标题行 + 表头行 + n 道题”的三列表格：编号、题干、备注
func sampleRows(n int) [][]string {
	rows := [][]string{
		{"", "리더십 진단", ""},
		{"번호", "문항", "비고"},
	}
	for i := 1; i <= n; i++ {
		rows = append(rows, []string{strconv.Itoa(i), questionText(i), "Y"})
	}
	return rows
}

func xlsxBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cells := make([]interface{}, len(r))
		for j, c := range r {
			cells[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func csvText(rows [][]string, sep string) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, sep))
		b.WriteString("\n")
	}
	return b.String()
}

func cp949Bytes(t *testing.T, s string) []byte {
	t.Helper()
	out, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return out
}
