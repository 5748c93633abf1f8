package model

// ChartScale 两个图表的固定刻度
var ChartScale = [2]float64{0, 5}

// PolarChart 细分战术雷达图数据
type PolarChart struct {
	Theta  []string   `json:"theta"`
	R      []float64  `json:"r"`
	Range  [2]float64 `json:"range"`
	Closed bool       `json:"closed"`
}

// BarChart 主类型柱状图数据
type BarChart struct {
	X     []string   `json:"x"`
	Y     []float64  `json:"y"`
	Range [2]float64 `json:"range"`
}

type ChartData struct {
	Radar PolarChart `json:"radar"`
	Bar   BarChart   `json:"bar"`
}

// NewChartData 将聚合结果转换为图表序列，坐标轴使用显示标签
func NewChartData(r AggregateResult) ChartData {
	cd := ChartData{
		Radar: PolarChart{Range: ChartScale, Closed: true},
		Bar:   BarChart{Range: ChartScale},
	}
	for _, m := range r.SubCategoryMeans {
		cd.Radar.Theta = append(cd.Radar.Theta, m.Label)
		cd.Radar.R = append(cd.Radar.R, m.Mean)
	}
	for _, m := range r.MainCategoryMeans {
		cd.Bar.X = append(cd.Bar.X, m.Label)
		cd.Bar.Y = append(cd.Bar.Y, m.Mean)
	}
	return cd
}

// Submission 一次提交的完整结果（不持久化）
type Submission struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Result AggregateResult `json:"result"`
	Charts ChartData       `json:"charts"`
}
