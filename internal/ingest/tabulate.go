package ingest

import "strings"

// Grid 无表头的矩形表格，所有行等宽
type Grid [][]string

// Tabulate 去除单元格首尾空白并将参差行补齐为等宽
func Tabulate(rows [][]string) Grid {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	g := make(Grid, 0, len(rows))
	for _, r := range rows {
		row := make([]string, width)
		for i, cell := range r {
			row[i] = strings.TrimSpace(cell)
		}
		g = append(g, row)
	}
	return g
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}
