package parser

import (
	"path/filepath"
	"strings"
)

// CompanyFromSource 由来源文件名推导公司名（裸文件名去掉末级扩展名）
func CompanyFromSource(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base {
		// 形如 ".xlsx" 的点文件没有主干
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// cellAt 取行内指定列的值，列缺失或行过短时为空串
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
