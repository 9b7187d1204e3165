package reporter

import (
	"fmt"
	"regexp"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chirine05/costbench-api/internal/model"
)

// DownloadName 约定的下载文件名（与磁盘上带时间戳的实际文件名无关）
const DownloadName = "CostBench_PerCompany.xlsx"

// templateSheet 无数据时的模板页名
const templateSheet = "Company_Template"

// reportColumns 输出列（列序固定）
var reportColumns = []string{
	"company_name", "fiscal_year", "reporting_currency", "base_currency",
	"line_item", "amount", "percent_of_revenue",
}

// sheetNameForbidden Excel Sheet 名中的非法字符
var sheetNameForbidden = regexp.MustCompile(`[\\/?*\[\]:]`)

// OutputFileName 生成带 UTC 时间戳的产出文件名
func OutputFileName(now time.Time) string {
	return "CostBench_PerCompany_" + now.UTC().Format("20060102_150405") + ".xlsx"
}

// SanitizeSheetName 将公司名清洗为合法 Sheet 名
// 非法字符替换为下划线，按字符截断到 31 位，结果为空时回退 "Company"
func SanitizeSheetName(company string) string {
	safe := sheetNameForbidden.ReplaceAllString(company, "_")
	if runes := []rune(safe); len(runes) > 31 {
		safe = string(runes[:31])
	}
	if safe == "" {
		return "Company"
	}
	return safe
}

// WriteWorkbook 将各公司报表写入一个工作簿并保存
// 每公司一个 Sheet；无任何报表时写出仅含固定科目的模板页
func WriteWorkbook(reports []model.CompanyReport, outPath string) error {
	file := excelize.NewFile()
	defer file.Close()

	if len(reports) == 0 {
		if err := file.SetSheetName("Sheet1", templateSheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
		if err := writeTemplateSheet(file); err != nil {
			return err
		}
		return file.SaveAs(outPath)
	}

	used := make(map[string]struct{}, len(reports))
	for i, report := range reports {
		name := uniqueSheetName(report.Company, used)
		if i == 0 {
			if err := file.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := file.NewSheet(name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", name, err)
			}
		}
		if err := writeReportSheet(file, name, report); err != nil {
			return err
		}
	}

	file.SetActiveSheet(0)
	return file.SaveAs(outPath)
}

// uniqueSheetName 清洗公司名并保证本工作簿内不重名，重名时追加序号
func uniqueSheetName(company string, used map[string]struct{}) string {
	name := SanitizeSheetName(company)
	if _, ok := used[name]; !ok {
		used[name] = struct{}{}
		return name
	}
	for n := 2; ; n++ {
		candidate := suffixedSheetName(name, n)
		if _, ok := used[candidate]; !ok {
			used[candidate] = struct{}{}
			return candidate
		}
	}
}

// suffixedSheetName 在 31 字符限制内追加 _n 序号
func suffixedSheetName(name string, n int) string {
	suffix := fmt.Sprintf("_%d", n)
	runes := []rune(name)
	if max := 31 - len(suffix); len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + suffix
}

// writeReportSheet 写入表头与数据行，空值单元格保持空白
func writeReportSheet(file *excelize.File, sheetName string, report model.CompanyReport) error {
	if err := writeHeader(file, sheetName); err != nil {
		return err
	}

	for i, row := range report.Rows {
		rowNo := i + 2
		values := []interface{}{
			row.CompanyName,
			row.FiscalYear,
			row.ReportingCurrency,
			row.BaseCurrency,
			row.LineItem,
		}
		for col, v := range values {
			if err := setCell(file, sheetName, col+1, rowNo, v); err != nil {
				return err
			}
		}
		if row.HasAmount() {
			if err := setCell(file, sheetName, 6, rowNo, row.Amount); err != nil {
				return err
			}
		}
		if row.HasPercent() {
			if err := setCell(file, sheetName, 7, rowNo, row.PercentOfRevenue); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeTemplateSheet 写入模板页：仅科目列有值
func writeTemplateSheet(file *excelize.File) error {
	if err := writeHeader(file, templateSheet); err != nil {
		return err
	}
	for i, item := range model.CanonicalItems {
		if err := setCell(file, templateSheet, 5, i+2, item); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader 写入第一行表头
func writeHeader(file *excelize.File, sheetName string) error {
	for col, title := range reportColumns {
		if err := setCell(file, sheetName, col+1, 1, title); err != nil {
			return err
		}
	}
	return nil
}

// setCell 按列号/行号写单元格
func setCell(file *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	if err := file.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
