package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfStringLiteral PDF 字符串字面量：(text)
var pdfStringLiteral = regexp.MustCompile(`\(([^)]*)\)`)

// ExtractPDFText 从 PDF 字节流提取纯文本
// 按页序拼接、页间以换行分隔，保留行结构供逐行解析；单页提取失败时跳过该页
func ExtractPDFText(content []byte) (string, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	return strings.Join(pages, "\n"), nil
}

// extractPageText 提取单页文本
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// textFromContentStream 解析内容流中的文本算子
// Tj/TJ 输出文本；' 与 T* 换行；Td/TD 依纵向位移判定换行还是同行间隔
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")) {
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
			continue
		}

		if bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")) {
			for _, m := range pdfStringLiteral.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
			continue
		}

		if bytes.HasSuffix(line, []byte("Td")) || bytes.HasSuffix(line, []byte("TD")) {
			if tdMovesLine(line) {
				sb.WriteByte('\n')
			} else if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}

		if bytes.Equal(line, []byte("T*")) {
			sb.WriteByte('\n')
		}
	}

	return cleanStreamText(sb.String())
}

// tdMovesLine 判断 Td/TD 的纵向位移是否非零（"tx ty Td"）
func tdMovesLine(line []byte) bool {
	fields := bytes.Fields(line)
	if len(fields) < 3 {
		return true
	}
	ty, err := strconv.ParseFloat(string(fields[len(fields)-2]), 64)
	if err != nil {
		return true
	}
	return ty != 0
}

// decodePDFString 解码 PDF 字符串转义（\n \r \t \\ \( \) 与八进制）
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\':
			sb.WriteByte('\\')
		case '(':
			sb.WriteByte('(')
		case ')':
			sb.WriteByte(')')
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				if i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7' {
					i++
					val = val*8 + int(raw[i]-'0')
					if i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7' {
						i++
						val = val*8 + int(raw[i]-'0')
					}
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// cleanStreamText 压缩行内空白、去除不可打印字符，保留换行
func cleanStreamText(text string) string {
	var sb strings.Builder
	prevSpace := true
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			prevSpace = true
		case unicode.IsSpace(r):
			if !prevSpace {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
