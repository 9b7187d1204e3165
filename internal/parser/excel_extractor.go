package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chirine05/costbench-api/internal/model"
)

// 列角色同义词表（英法混合，对小写表头做包含匹配）
// 同义词顺序即优先级：先按词、再按列位置取首个命中
var (
	labelColumnKeys    = []string{"label", "item", "intitul", "description", "account"}
	amountColumnKeys   = []string{"amount", "montant", "value", "valeur", "total"}
	yearColumnKeys     = []string{"year", "exercice", "fy", "fiscal"}
	currencyColumnKeys = []string{"curr", "devise", "currency"}
)

// ExcelExtractor 表格型报表抽取器
type ExcelExtractor struct{}

// NewExcelExtractor 创建表格抽取器
func NewExcelExtractor() *ExcelExtractor {
	return &ExcelExtractor{}
}

// Extract 从工作簿字节流抽取分类行
// 每个 Sheet 独立定位列并解析，结果按 Sheet 顺序拼接
func (e *ExcelExtractor) Extract(content []byte, sourceName, baseCurrency string) ([]model.ClassifiedRow, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	company := CompanyFromSource(sourceName)

	var rows []model.ClassifiedRow
	for _, sheetName := range file.GetSheetList() {
		sheetRows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
		}
		rows = append(rows, extractSheet(sheetRows, company, baseCurrency)...)
	}

	return rows, nil
}

// extractSheet 解析单个 Sheet：首行为表头，其余为数据行
// 标签列缺失或标签未识别的行直接丢弃；金额不合法的行保留但金额为空
func extractSheet(sheetRows [][]string, company, baseCurrency string) []model.ClassifiedRow {
	if len(sheetRows) < 2 {
		return nil
	}

	headers := make([]string, len(sheetRows[0]))
	for i, h := range sheetRows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	labelCol := findColumn(headers, labelColumnKeys)
	amountCol := findColumn(headers, amountColumnKeys)
	yearCol := findColumn(headers, yearColumnKeys)
	currencyCol := findColumn(headers, currencyColumnKeys)

	var rows []model.ClassifiedRow
	for _, row := range sheetRows[1:] {
		item := Classify(cellAt(row, labelCol))
		if item == "" {
			continue
		}

		currency := cellAt(row, currencyCol)
		base := baseCurrency
		if base == "" {
			base = currency
		}

		rows = append(rows, model.ClassifiedRow{
			CompanyName:       company,
			FiscalYear:        cellAt(row, yearCol),
			ReportingCurrency: currency,
			BaseCurrency:      base,
			LineItem:          item,
			Amount:            ParseAmount(cellAt(row, amountCol)),
		})
	}

	return rows
}

// findColumn 按同义词表定位列，未命中返回 -1
func findColumn(headers []string, keys []string) int {
	for _, key := range keys {
		for i, h := range headers {
			if strings.Contains(h, key) {
				return i
			}
		}
	}
	return -1
}
