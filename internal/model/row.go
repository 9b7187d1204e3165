package model

import "math"

// ClassifiedRow 归一化后的单条观测
// 由抽取器产出，聚合器一次性消费，产出后不再修改
type ClassifiedRow struct {
	CompanyName       string  // 公司名，来源文件名主干
	FiscalYear        string  // 会计年度，未知时为空
	ReportingCurrency string  // 报告币种（原文记录或推断）
	BaseCurrency      string  // 基准币种，未指定时等于报告币种
	LineItem          string  // 固定科目表成员
	Amount            float64 // 金额，NaN 表示缺失；保留原始量纲
}

// HasAmount 金额是否存在
func (r ClassifiedRow) HasAmount() bool {
	return !math.IsNaN(r.Amount)
}

// NoAmount 金额缺失哨兵值
func NoAmount() float64 {
	return math.NaN()
}
