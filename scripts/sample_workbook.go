// 生成示例题库 data.xlsx
//
// 第一行为标题，第二行为表头，其后是 44 道题；
// 加载时标题与表头会被噪声过滤去掉。
//
// 用法: go run scripts/sample_workbook.go [-o data.xlsx]

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

var questions = []string{
	// 합리적 설득
	"나는 요청을 할 때 논리적인 근거와 사실을 제시한다",
	"나는 내 제안이 실현 가능하다는 증거를 보여준다",
	"나는 자료와 수치를 활용하여 상대를 설득한다",
	"나는 계획의 장점을 구체적으로 설명한다",
	// 이해관계 설명
	"나는 요청이 상대에게 어떤 이익이 되는지 설명한다",
	"나는 업무가 상대의 경력에 도움이 된다는 점을 강조한다",
	"나는 제안을 따르면 상대가 얻을 수 있는 것을 알려준다",
	"나는 상대의 관심사와 요청을 연결하여 설명한다",
	// 교환
	"나는 도움을 받는 대가로 나중에 보답하겠다고 약속한다",
	"나는 협조해 주면 필요한 자원을 제공하겠다고 제안한다",
	"나는 상대가 이전에 받은 도움을 상기시키며 협조를 구한다",
	"나는 서로에게 이익이 되는 거래를 제안한다",
	// 영감에 대한 호소
	"나는 요청이 조직의 가치와 이상에 부합한다고 강조한다",
	"나는 과업의 의미를 설명하여 열정을 불러일으킨다",
	"나는 구성원의 자부심에 호소하여 참여를 이끌어낸다",
	"나는 미래의 비전을 제시하며 도전을 독려한다",
	// 협의
	"나는 계획을 세울 때 구성원의 의견을 구한다",
	"나는 상대의 우려를 반영하여 제안을 수정한다",
	"나는 실행 방법을 함께 결정하자고 제안한다",
	"나는 변화에 대해 구성원의 제안을 적극적으로 듣는다",
	// 호의 얻기
	"나는 요청하기 전에 상대를 칭찬하여 분위기를 만든다",
	"나는 상대의 능력을 인정하는 말을 먼저 건넨다",
	"나는 친근한 태도로 상대의 호감을 얻은 뒤 부탁한다",
	"나는 상대가 특별히 적임자라고 말하며 요청한다",
	// 개인적 호소
	"나는 개인적인 친분에 기대어 도움을 요청한다",
	"나는 친구로서 부탁을 들어달라고 말한다",
	"나는 상대와의 우정을 언급하며 협조를 구한다",
	"나는 개인적으로 중요한 일이라며 도와달라고 한다",
	// 협력
	"나는 요청한 일을 수행하는 데 필요한 도움을 제공한다",
	"나는 과업을 쉽게 만들기 위해 자원을 함께 찾아준다",
	"나는 문제가 생기면 함께 해결하겠다고 약속한다",
	"나는 상대의 부담을 덜기 위해 업무 일부를 맡는다",
	// 합법화
	"나는 요청이 규정과 정책에 근거한다고 설명한다",
	"나는 내 권한 범위 안의 요청이라는 점을 밝힌다",
	"나는 공식 문서나 지침을 근거로 제시한다",
	"나는 상위 조직의 방침에 따른 것임을 강조한다",
	// 압력
	"나는 요청을 따르지 않으면 불이익이 있다고 경고한다",
	"나는 진행 상황을 반복적으로 확인하며 재촉한다",
	"나는 단호한 어조로 즉각적인 실행을 요구한다",
	"나는 기한을 지키지 못하면 문제 삼겠다고 말한다",
	// 연합
	"나는 다른 사람의 지지를 얻어 요청에 힘을 싣는다",
	"나는 상사의 지원을 언급하며 협조를 요청한다",
	"나는 동료들과 함께 상대를 설득한다",
	"나는 이미 많은 사람이 동의했다는 점을 알린다",
}

func main() {
	out := flag.String("o", "data.xlsx", "输出文件路径")
	flag.Parse()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"리더십 영향력 진단"},
		{"번호", "문항", "비고"},
	}
	for i, q := range questions {
		rows = append(rows, []interface{}{i + 1, q, ""})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatalf("单元格坐标错误: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Fatalf("写入第 %d 行失败: %v", i+1, err)
		}
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		log.Fatalf("设置列宽失败: %v", err)
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("保存失败: %v", err)
	}
	fmt.Printf("已生成 %s（%d 道题）\n", *out, len(questions))
}
