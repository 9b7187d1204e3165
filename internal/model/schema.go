package model

import "strings"

// CategoryRevenue 收入类目前缀，公司总收入按该前缀下的科目金额汇总
const CategoryRevenue = "Revenue"

// CanonicalItems 固定科目表（36 项）
// 顺序即利润表结构，输出时不得重排；任何地方不得修改该表
var CanonicalItems = []string{
	"Revenue | Product",
	"Revenue | Services",
	"Revenue | Other Operating Revenue",
	"COGS | Materials",
	"COGS | Direct Labor",
	"COGS | Purchased Services",
	"COGS | Other COGS",
	"Gross Profit (derived)",
	"OpEx | Sales & Marketing | People",
	"OpEx | Sales & Marketing | Media/Ads",
	"OpEx | Sales & Marketing | Agencies",
	"OpEx | Sales & Marketing | Events",
	"OpEx | Sales & Marketing | Software/Tools",
	"OpEx | General & Administrative | People",
	"OpEx | General & Administrative | Facilities",
	"OpEx | General & Administrative | Professional Services",
	"OpEx | General & Administrative | IT/Software",
	"OpEx | General & Administrative | Travel",
	"OpEx | General & Administrative | Other G&A",
	"OpEx | Research & Development | People",
	"OpEx | Research & Development | Contractors",
	"OpEx | Research & Development | Cloud/Compute",
	"OpEx | Research & Development | Labs/Prototyping",
	"OpEx | Research & Development | Other R&D",
	"Depreciation",
	"Amortization",
	"Other Operating | Grants/Subsidies",
	"Other Operating | Gains/Losses on Disposals",
	"Other Operating | Restructuring",
	"Operating Profit (EBIT) (derived)",
	"Below Operating | Net Interest",
	"Below Operating | FX Gains/Losses",
	"Below Operating | Associates/JVs",
	"Tax | Current",
	"Tax | Deferred",
	"Net Income (derived)",
}

// canonicalSet 固定科目集合，供成员判断
var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CanonicalItems))
	for _, item := range CanonicalItems {
		set[item] = struct{}{}
	}
	return set
}()

// IsCanonical 判断科目是否属于固定科目表
func IsCanonical(item string) bool {
	_, ok := canonicalSet[item]
	return ok
}

// IsRevenueItem 判断科目是否属于收入类目
func IsRevenueItem(item string) bool {
	return strings.HasPrefix(item, CategoryRevenue)
}
