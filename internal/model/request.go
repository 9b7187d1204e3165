package model

// FileRef 构建请求中的单个文件引用
// dataUri 与 contentUrl 二选一，dataUri 优先
type FileRef struct {
	Name        string            `json:"name"`        // 文件名，公司名由此推导
	ContentURL  string            `json:"contentUrl"`  // 远程下载地址
	ContentType string            `json:"contentType"` // MIME 类型提示
	Headers     map[string]string `json:"headers"`     // 下载请求附带的头
	DataURI     string            `json:"dataUri"`     // data:...;base64,xxx 内联内容
}

// BuildRequest 工作簿构建请求
type BuildRequest struct {
	Files        []FileRef `json:"files"`
	BaseCurrency string    `json:"baseCurrency"` // 基准币种覆盖，"NONE" 视为未指定
}

// BaseCurrencyOverride 返回有效的基准币种覆盖值，未指定时为空串
func (r BuildRequest) BaseCurrencyOverride() string {
	if r.BaseCurrency == "" || r.BaseCurrency == "NONE" {
		return ""
	}
	return r.BaseCurrency
}

// BuildResult 构建结果
type BuildResult struct {
	FileURL  string `json:"fileUrl"`  // 产出文件的公开下载地址
	FileName string `json:"fileName"` // 约定的下载文件名
}
