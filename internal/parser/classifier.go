package parser

import (
	"regexp"
	"strings"
)

// labelRule 标签分类规则
type labelRule struct {
	pattern *regexp.Regexp
	item    string
}

// wordBound 给同义词组包上词边界
// RE2 的 \b 只按 ASCII 判定，publicité 这类重音结尾的同义词在词尾再也
// 碰不到边界，这里用显式的字母数字类代替 \b
func wordBound(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])(?:` + expr + `)(?:[^\p{L}\p{N}_]|$)`)
}

// labelRules 分类规则表（进程级只读，启动时编译）
// 顺序即优先级，先命中先得；同时含广告词与销售词的标签归入靠前的规则
var labelRules = []labelRule{
	{wordBound(`advertis|marketing|media|pub(licit[eé])?`), "OpEx | Sales & Marketing | Media/Ads"},
	{wordBound(`g[& ]*a|frais\s*g[ée]n[ée]raux|administrative`), "OpEx | General & Administrative | People"},
	{wordBound(`r&d|recherche|entwicklung|research`), "OpEx | Research & Development | People"},
	{wordBound(`cost of sales|co[uû]t des ventes|cogs`), "COGS | Other COGS"},
	{wordBound(`materials|mati[eè]res`), "COGS | Materials"},
	{wordBound(`direct labor|main d'?oeuvre|personnel direct`), "COGS | Direct Labor"},
	{wordBound(`services? achet[ée]s|purchased services`), "COGS | Purchased Services"},
	{wordBound(`revenue|chiffre d'affaires|sales`), "Revenue | Product"},
	{wordBound(`depreciation|amortissement technique`), "Depreciation"},
	{wordBound(`amortization|amortissement incorporel`), "Amortization"},
	{wordBound(`taxes?|imp[oô]ts?`), "Tax | Current"},
}

// Classify 将自由文本科目标签映射到固定科目
// 标签小写后按规则表顺序匹配，未命中返回空串
func Classify(label string) string {
	if label == "" {
		return ""
	}
	low := strings.ToLower(label)
	for _, rule := range labelRules {
		if rule.pattern.MatchString(low) {
			return rule.item
		}
	}
	return ""
}
