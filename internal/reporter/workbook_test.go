package reporter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chirine05/costbench-api/internal/model"
)

func TestSanitizeSheetName(t *testing.T) {
	t.Parallel()

	if got := SanitizeSheetName("a/b\\c?d*e[f]g:h"); got != "a_b_c_d_e_f_g_h" {
		t.Fatalf("forbidden chars got=%q", got)
	}
	long := strings.Repeat("x", 40)
	if got := SanitizeSheetName(long); got != strings.Repeat("x", 31) {
		t.Fatalf("truncation got=%q", got)
	}
	// 按字符截断而不是字节
	wide := strings.Repeat("公", 40)
	if got := SanitizeSheetName(wide); got != strings.Repeat("公", 31) {
		t.Fatalf("rune truncation got=%q", got)
	}
	if got := SanitizeSheetName(""); got != "Company" {
		t.Fatalf("empty want=Company got=%q", got)
	}
	if got := SanitizeSheetName("acme"); got != "acme" {
		t.Fatalf("plain want=acme got=%q", got)
	}
}

func TestOutputFileName(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)
	if got := OutputFileName(at); got != "CostBench_PerCompany_20230405_060708.xlsx" {
		t.Fatalf("unexpected name: %q", got)
	}

	// 时间戳按 UTC 生成
	shifted := time.Date(2023, 4, 5, 8, 7, 8, 0, time.FixedZone("CEST", 2*3600))
	if got := OutputFileName(shifted); got != "CostBench_PerCompany_20230405_060708.xlsx" {
		t.Fatalf("unexpected name for zoned time: %q", got)
	}
}

func TestWriteWorkbook_TemplateOnEmpty(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteWorkbook(nil, outPath); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Company_Template" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	if got, _ := f.GetCellValue("Company_Template", "A1"); got != "company_name" {
		t.Fatalf("A1 want=company_name got=%q", got)
	}
	if got, _ := f.GetCellValue("Company_Template", "E1"); got != "line_item" {
		t.Fatalf("E1 want=line_item got=%q", got)
	}
	if got, _ := f.GetCellValue("Company_Template", "E2"); got != "Revenue | Product" {
		t.Fatalf("E2 want=Revenue | Product got=%q", got)
	}
	if got, _ := f.GetCellValue("Company_Template", "E37"); got != "Net Income (derived)" {
		t.Fatalf("E37 want=Net Income (derived) got=%q", got)
	}
	// 模板页除科目列外保持空白
	if got, _ := f.GetCellValue("Company_Template", "F2"); got != "" {
		t.Fatalf("F2 want=\"\" got=%q", got)
	}
	if got, _ := f.GetCellValue("Company_Template", "A2"); got != "" {
		t.Fatalf("A2 want=\"\" got=%q", got)
	}
}

func TestWriteWorkbook_PerCompanySheets(t *testing.T) {
	t.Parallel()

	reports := Aggregate([]model.ClassifiedRow{
		classified("acme", "Revenue | Product", 1000),
		classified("acme", "COGS | Materials", 250),
		classified("globex", "Revenue | Product", 500),
	})

	outPath := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteWorkbook(reports, outPath); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "acme" || sheets[1] != "globex" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	if got, _ := f.GetCellValue("acme", "A2"); got != "acme" {
		t.Fatalf("A2 want=acme got=%q", got)
	}
	if got, _ := f.GetCellValue("acme", "E2"); got != "Revenue | Product" {
		t.Fatalf("E2 want=Revenue | Product got=%q", got)
	}
	if got, _ := f.GetCellValue("acme", "F2"); got != "1000" {
		t.Fatalf("F2 want=1000 got=%q", got)
	}
	if got, _ := f.GetCellValue("acme", "G2"); got != "1" {
		t.Fatalf("G2 want=1 got=%q", got)
	}

	// COGS | Materials 是固定科目表第 4 项，落在第 5 行
	if got, _ := f.GetCellValue("acme", "E5"); got != "COGS | Materials" {
		t.Fatalf("E5 want=COGS | Materials got=%q", got)
	}
	if got, _ := f.GetCellValue("acme", "F5"); got != "250" {
		t.Fatalf("F5 want=250 got=%q", got)
	}
	if got, _ := f.GetCellValue("acme", "G5"); got != "0.25" {
		t.Fatalf("G5 want=0.25 got=%q", got)
	}

	// 缺失科目的金额与占比为空白单元格
	if got, _ := f.GetCellValue("acme", "F10"); got != "" {
		t.Fatalf("F10 want=\"\" got=%q", got)
	}
}

func TestWriteWorkbook_DuplicateSheetNames(t *testing.T) {
	t.Parallel()

	reports := []model.CompanyReport{
		{Company: "a/b"},
		{Company: "a?b"},
	}

	outPath := filepath.Join(t.TempDir(), "out.xlsx")
	if err := WriteWorkbook(reports, outPath); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "a_b" || sheets[1] != "a_b_2" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
}
