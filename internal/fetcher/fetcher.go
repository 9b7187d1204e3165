package fetcher

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chirine05/costbench-api/internal/model"
)

// FetchError 文件内容获取失败
type FetchError struct {
	Name     string // 文件名
	Upstream bool   // 远端下载失败
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Name, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher 文件内容获取器，支持 dataUri 内嵌与 contentUrl 远端下载
type Fetcher struct {
	client *http.Client
}

// NewFetcher 创建文件内容获取器
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch 获取单个文件内容，dataUri 优先于 contentUrl
func (f *Fetcher) Fetch(ref model.FileRef) ([]byte, error) {
	if ref.DataURI != "" {
		data, err := decodeDataURI(ref.DataURI)
		if err != nil {
			return nil, &FetchError{Name: ref.Name, Err: err}
		}
		return data, nil
	}
	if ref.ContentURL != "" {
		data, err := f.download(ref)
		if err != nil {
			return nil, &FetchError{Name: ref.Name, Upstream: true, Err: err}
		}
		return data, nil
	}
	return nil, &FetchError{Name: ref.Name, Err: errors.New("no dataUri or contentUrl")}
}

// decodeDataURI 解码 data URI，逗号前的媒体类型前缀可省略
func decodeDataURI(uri string) ([]byte, error) {
	payload := uri
	if idx := strings.Index(uri, ","); idx >= 0 {
		payload = uri[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataUri: %w", err)
	}
	return data, nil
}

// download 按 contentUrl 下载文件内容，请求头原样透传
func (f *Fetcher) download(ref model.FileRef) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, ref.ContentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range ref.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", ref.ContentURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to download %s: status %d", ref.ContentURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
