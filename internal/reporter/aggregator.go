package reporter

import (
	"math"

	"github.com/chirine05/costbench-api/internal/model"
)

// Aggregate 将分类行聚合为各公司报表
// 公司顺序为首次出现顺序；无任何行时返回空切片，由写出层退化为模板页
func Aggregate(rows []model.ClassifiedRow) []model.CompanyReport {
	groups := make(map[string][]model.ClassifiedRow)
	var order []string

	for _, row := range rows {
		company := row.CompanyName
		if company == "" {
			company = "Company"
		}
		if _, ok := groups[company]; !ok {
			order = append(order, company)
		}
		groups[company] = append(groups[company], row)
	}

	reports := make([]model.CompanyReport, 0, len(order))
	for _, company := range order {
		reports = append(reports, buildReport(company, groups[company]))
	}
	return reports
}

// buildReport 生成单公司报表：固定科目逐项输出，共 36 行
// 公司/年度/币种元信息取该公司的首行；同科目多行时后写覆盖先写
func buildReport(company string, items []model.ClassifiedRow) model.CompanyReport {
	totalRevenue := 0.0
	for _, it := range items {
		if model.IsRevenueItem(it.LineItem) && it.HasAmount() {
			totalRevenue += it.Amount
		}
	}

	lookup := make(map[string]model.ClassifiedRow, len(items))
	for _, it := range items {
		lookup[it.LineItem] = it
	}

	meta := items[0]
	baseCurrency := meta.BaseCurrency
	if baseCurrency == "" {
		baseCurrency = meta.ReportingCurrency
	}

	rows := make([]model.ReportRow, 0, len(model.CanonicalItems))
	for _, item := range model.CanonicalItems {
		amount := model.NoAmount()
		if hit, ok := lookup[item]; ok {
			amount = hit.Amount
		}

		percent := math.NaN()
		if totalRevenue != 0 && !math.IsNaN(amount) {
			percent = amount / totalRevenue
		}

		rows = append(rows, model.ReportRow{
			CompanyName:       meta.CompanyName,
			FiscalYear:        meta.FiscalYear,
			ReportingCurrency: meta.ReportingCurrency,
			BaseCurrency:      baseCurrency,
			LineItem:          item,
			Amount:            amount,
			PercentOfRevenue:  percent,
		})
	}

	return model.CompanyReport{Company: company, Rows: rows}
}
