package model

// MainCategory 三大影响力类型
type MainCategory string

const (
	Rational    MainCategory = "Rational"
	Affiliative MainCategory = "Affiliative"
	Coercive    MainCategory = "Coercive"
)

// QuestionsPerSubCategory 每个细分战术固定 4 道题
const QuestionsPerSubCategory = 4

// TotalQuestions 题库固定题数
const TotalQuestions = 44

// SubCategory 细分影响战术
type SubCategory struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// CategoryGroup 一个主类型及其有序的细分战术
type CategoryGroup struct {
	Main  MainCategory  `json:"main"`
	Label string        `json:"label"`
	Subs  []SubCategory `json:"subs"`
}

// CategoryStructure 主类型 -> 细分战术，顺序即题目位置顺序与图表坐标轴顺序
var CategoryStructure = []CategoryGroup{
	{
		Main:  Rational,
		Label: "합리적 파워",
		Subs: []SubCategory{
			{Name: "Persuasion", Label: "합리적 설득"},
			{Name: "InterestExplanation", Label: "이해관계 설명"},
			{Name: "Exchange", Label: "교환"},
		},
	},
	{
		Main:  Affiliative,
		Label: "친화적 파워",
		Subs: []SubCategory{
			{Name: "InspirationalAppeal", Label: "영감에 대한 호소"},
			{Name: "Consultation", Label: "협의"},
			{Name: "IngratiatingTactics", Label: "호의 얻기"},
			{Name: "PersonalAppeal", Label: "개인적 호소"},
			{Name: "Collaboration", Label: "협력"},
		},
	},
	{
		Main:  Coercive,
		Label: "강압적 파워",
		Subs: []SubCategory{
			{Name: "Legitimating", Label: "합법화"},
			{Name: "Pressure", Label: "압력"},
			{Name: "Coalition", Label: "연합"},
		},
	},
}

// Assignment 单个题目位置的分类结果
type Assignment struct {
	Main MainCategory
	Sub  SubCategory
}

// PositionAssignments 按位置展开分类结构，下标 0 对应位置 1
func PositionAssignments() []Assignment {
	out := make([]Assignment, 0, TotalQuestions)
	for _, g := range CategoryStructure {
		for _, s := range g.Subs {
			for i := 0; i < QuestionsPerSubCategory; i++ {
				out = append(out, Assignment{Main: g.Main, Sub: s})
			}
		}
	}
	return out
}

// AssignmentFor 返回位置 pos (1..44) 的分类
func AssignmentFor(pos int) (Assignment, bool) {
	if pos < 1 || pos > TotalQuestions {
		return Assignment{}, false
	}
	idx := (pos - 1) / QuestionsPerSubCategory
	for _, g := range CategoryStructure {
		if idx < len(g.Subs) {
			return Assignment{Main: g.Main, Sub: g.Subs[idx]}, true
		}
		idx -= len(g.Subs)
	}
	return Assignment{}, false
}

// GroupFor 查找主类型定义
func GroupFor(main MainCategory) (CategoryGroup, bool) {
	for _, g := range CategoryStructure {
		if g.Main == main {
			return g, true
		}
	}
	return CategoryGroup{}, false
}

// SubCategoryCount 细分战术总数
func SubCategoryCount() int {
	n := 0
	for _, g := range CategoryStructure {
		n += len(g.Subs)
	}
	return n
}
