package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chirine05/costbench-api/internal/fetcher"
	"github.com/chirine05/costbench-api/internal/model"
	"github.com/chirine05/costbench-api/internal/parser"
	"github.com/chirine05/costbench-api/internal/reporter"
	"github.com/chirine05/costbench-api/internal/store"
)

// 文件类型
const (
	kindExcel = "excel"
	kindPDF   = "pdf"
)

// Coordinator 构建协调器
type Coordinator struct {
	store   *store.Store
	fetcher *fetcher.Fetcher
	excel   *parser.ExcelExtractor
	text    *parser.TextExtractor
	outDir  string
}

// NewCoordinator 创建构建协调器
func NewCoordinator(st *store.Store, f *fetcher.Fetcher, outDir string) *Coordinator {
	return &Coordinator{
		store:   st,
		fetcher: f,
		excel:   parser.NewExcelExtractor(),
		text:    parser.NewTextExtractor(),
		outDir:  outDir,
	}
}

// BuildOptions 构建选项
type BuildOptions struct {
	Files        []model.FileRef
	BaseCurrency string // 基准货币覆盖，空表示按文件推断
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`      // start/file_start/file_done/info/warning/error/done
	Message   string      `json:"message"`   // 事件消息
	Data      interface{} `json:"data"`      // 附加数据
	Timestamp time.Time   `json:"timestamp"` // 时间戳
}

// BuildReport 构建结果汇总
type BuildReport struct {
	BuildID      string        `json:"buildId"`
	FileCount    int           `json:"fileCount"`
	ParsedFiles  int           `json:"parsedFiles"`
	SkippedFiles int           `json:"skippedFiles"`
	RowCount     int           `json:"rowCount"`
	CompanyCount int           `json:"companyCount"`
	OutputFile   string        `json:"outputFile"`
	Duration     time.Duration `json:"duration"`
}

// Run 同步执行构建，返回结果汇总
func (c *Coordinator) Run(opts BuildOptions) (*BuildReport, error) {
	return c.doBuild(opts, nil)
}

// Build 执行构建，返回进度通道
func (c *Coordinator) Build(opts BuildOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doBuild(opts, progressChan)
	}()

	return progressChan
}

// doBuild 执行构建逻辑
func (c *Coordinator) doBuild(opts BuildOptions, progressChan chan ProgressEvent) (*BuildReport, error) {
	startTime := time.Now()
	buildID := uuid.New().String()

	report := &BuildReport{
		BuildID:   buildID,
		FileCount: len(opts.Files),
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "start",
		Message: fmt.Sprintf("开始构建，共 %d 个文件", len(opts.Files)),
		Data: map[string]interface{}{
			"build_id":   buildID,
			"file_count": len(opts.Files),
		},
		Timestamp: time.Now(),
	})

	logID, err := c.store.CreateBuildLog(buildID, len(opts.Files))
	if err != nil {
		c.sendProgress(progressChan, ProgressEvent{
			Type:      "warning",
			Message:   fmt.Sprintf("记录构建日志失败: %v", err),
			Timestamp: time.Now(),
		})
		logID = 0
	}

	// 逐个文件拉取并解析
	var allRows []model.ClassifiedRow
	for _, ref := range opts.Files {
		c.sendProgress(progressChan, ProgressEvent{
			Type:    "file_start",
			Message: fmt.Sprintf("正在处理文件: %s", ref.Name),
			Data: map[string]string{
				"filename": ref.Name,
			},
			Timestamp: time.Now(),
		})

		rows, skipped, err := c.processFile(ref, opts.BaseCurrency)
		if err != nil {
			c.failBuild(logID, progressChan, err)
			return nil, err
		}
		if skipped {
			report.SkippedFiles++
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("跳过不支持的文件: %s", ref.Name),
				Timestamp: time.Now(),
			})
			continue
		}

		report.ParsedFiles++
		allRows = append(allRows, rows...)

		c.sendProgress(progressChan, ProgressEvent{
			Type:    "file_done",
			Message: fmt.Sprintf("文件 \"%s\" 解析完成: %d 行", ref.Name, len(rows)),
			Data: map[string]interface{}{
				"filename":  ref.Name,
				"row_count": len(rows),
			},
			Timestamp: time.Now(),
		})
	}

	// 按公司聚合
	companies := reporter.Aggregate(allRows)
	report.RowCount = len(allRows)
	report.CompanyCount = len(companies)

	c.sendProgress(progressChan, ProgressEvent{
		Type:    "info",
		Message: fmt.Sprintf("识别 %d 家公司，共 %d 行", len(companies), len(allRows)),
		Data: map[string]interface{}{
			"company_count": len(companies),
			"row_count":     len(allRows),
		},
		Timestamp: time.Now(),
	})

	// 写出工作簿
	outName := reporter.OutputFileName(time.Now())
	outPath := filepath.Join(c.outDir, outName)
	if err := reporter.WriteWorkbook(companies, outPath); err != nil {
		c.failBuild(logID, progressChan, err)
		return nil, err
	}

	report.OutputFile = outName
	report.Duration = time.Since(startTime)

	if logID > 0 {
		if err := c.store.CompleteBuildLog(logID, report.RowCount, report.CompanyCount, outName, "success", ""); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("更新构建日志失败: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "done",
		Message:   "构建完成",
		Data:      report,
		Timestamp: time.Now(),
	})

	return report, nil
}

// processFile 拉取并解析单个文件，类型无法识别时跳过
func (c *Coordinator) processFile(ref model.FileRef, baseCurrency string) ([]model.ClassifiedRow, bool, error) {
	content, err := c.fetcher.Fetch(ref)
	if err != nil {
		return nil, false, err
	}

	switch fileKind(ref) {
	case kindExcel:
		sourceName := ref.Name
		if sourceName == "" {
			sourceName = "file.xlsx"
		}
		rows, err := c.excel.Extract(content, sourceName, baseCurrency)
		if err != nil {
			return nil, false, err
		}
		return rows, false, nil
	case kindPDF:
		sourceName := ref.Name
		if sourceName == "" {
			sourceName = "file.pdf"
		}
		text, err := parser.ExtractPDFText(content)
		if err != nil {
			return nil, false, err
		}
		return c.text.Extract(text, sourceName, baseCurrency), false, nil
	default:
		return nil, true, nil
	}
}

// fileKind 按文件名后缀与 contentType 判断文件类型
func fileKind(ref model.FileRef) string {
	name := strings.ToLower(ref.Name)
	if strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls") || strings.HasSuffix(ref.ContentType, "sheet") {
		return kindExcel
	}
	if strings.HasSuffix(name, ".pdf") || strings.HasSuffix(ref.ContentType, "pdf") {
		return kindPDF
	}
	return ""
}

// failBuild 标记构建失败并发送错误事件
func (c *Coordinator) failBuild(logID int64, progressChan chan ProgressEvent, buildErr error) {
	if logID > 0 {
		if err := c.store.CompleteBuildLog(logID, 0, 0, "", "error", buildErr.Error()); err != nil {
			c.sendProgress(progressChan, ProgressEvent{
				Type:      "warning",
				Message:   fmt.Sprintf("更新构建日志失败: %v", err),
				Timestamp: time.Now(),
			})
		}
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:      "error",
		Message:   buildErr.Error(),
		Timestamp: time.Now(),
	})
}

// sendProgress 发送进度事件
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	if ch == nil {
		return
	}
	select {
	case ch <- event:
	default:
		// 通道已满，丢弃事件
	}
}
