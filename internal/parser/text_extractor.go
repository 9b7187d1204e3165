package parser

import (
	"math"
	"regexp"
	"strings"

	"github.com/chirine05/costbench-api/internal/model"
)

// 文档级币种指示词与行切分形态（进程级只读）
var (
	usdHint = regexp.MustCompile(`(?i)\bUSD|\$|US\$|dollars?\b`)
	eurHint = regexp.MustCompile(`(?i)\bEUR|€\b`)
	gbpHint = regexp.MustCompile(`(?i)\bGBP|£\b`)

	// 行形态：前段标签 + 空白/冒号/连字符分隔 + 行尾数值段
	lineShape = regexp.MustCompile(`(.*?)[\s:\-]+([\(\)\-\d\s,\.]+)$`)
)

// TextExtractor 纯文本报表抽取器
type TextExtractor struct{}

// NewTextExtractor 创建文本抽取器
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// DetectCurrency 从全文猜测报告币种，未命中返回空串
func DetectCurrency(text string) string {
	switch {
	case usdHint.MatchString(text):
		return "USD"
	case eurHint.MatchString(text):
		return "EUR"
	case gbpHint.MatchString(text):
		return "GBP"
	default:
		return ""
	}
}

// Extract 从纯文本抽取分类行
// 币种对整篇只检测一次；标签未识别或数值段不合法的行整行丢弃
func (e *TextExtractor) Extract(text, sourceName, baseCurrency string) []model.ClassifiedRow {
	company := CompanyFromSource(sourceName)
	currency := DetectCurrency(text)

	base := baseCurrency
	if base == "" {
		base = currency
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var rows []model.ClassifiedRow
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := lineShape.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		item := Classify(m[1])
		if item == "" {
			continue
		}

		amount := ParseAmount(m[2])
		if math.IsNaN(amount) {
			continue
		}

		rows = append(rows, model.ClassifiedRow{
			CompanyName:       company,
			ReportingCurrency: currency,
			BaseCurrency:      base,
			LineItem:          item,
			Amount:            amount,
		})
	}

	return rows
}
