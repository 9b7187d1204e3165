package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberShape 合法数值形态：可选负号 + 整数 + 可选小数，不允许其他字符
var numberShape = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ParseAmount 解析自由文本数值
// 支持千分位逗号、不间断空格、会计括号负数；无法解析时返回 NaN，绝不 panic
func ParseAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	neg := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")

	if !numberShape.MatchString(s) {
		return math.NaN()
	}

	v, _ := strconv.ParseFloat(s, 64)
	if neg {
		return -v
	}
	return v
}
