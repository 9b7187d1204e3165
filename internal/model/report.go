package model

import "math"

// ReportRow 公司报表中的一行，科目顺序与 CanonicalItems 一致
type ReportRow struct {
	CompanyName       string
	FiscalYear        string
	ReportingCurrency string
	BaseCurrency      string
	LineItem          string
	Amount            float64 // NaN 表示空单元格
	PercentOfRevenue  float64 // NaN 表示空单元格
}

// HasAmount 金额是否存在
func (r ReportRow) HasAmount() bool {
	return !math.IsNaN(r.Amount)
}

// HasPercent 收入占比是否存在
func (r ReportRow) HasPercent() bool {
	return !math.IsNaN(r.PercentOfRevenue)
}

// CompanyReport 单公司报表：固定 36 行
type CompanyReport struct {
	Company string // Sheet 命名依据（已兜底，不为空）
	Rows    []ReportRow
}
