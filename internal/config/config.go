package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Fetch  FetchConfig  `toml:"fetch"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port          int    `toml:"port"`
	DevMode       bool   `toml:"dev_mode"`
	APIKey        string `toml:"api_key"`
	PublicBaseURL string `toml:"public_base_url"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
	OutDir  string `toml:"out_dir"`
}

// FetchConfig 远端文件下载配置
type FetchConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:          20262,
			DevMode:       false,
			APIKey:        "",
			PublicBaseURL: "https://example.com",
		},
		Data: DataConfig{
			DataDir: "data",
			OutDir:  "out",
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// firstEnv 返回第一个非空的环境变量值
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// applyEnvOverrides 应用环境变量覆盖，COSTBENCH_ 前缀优先于旧变量名
func applyEnvOverrides(config *AppConfig) {
	if v := firstEnv("COSTBENCH_API_KEY", "API_KEY"); v != "" {
		config.Server.APIKey = v
	}
	if v := firstEnv("COSTBENCH_PUBLIC_BASE_URL", "PUBLIC_BASE_URL"); v != "" {
		config.Server.PublicBaseURL = v
	}
	if v := firstEnv("COSTBENCH_OUTDIR", "OUTDIR"); v != "" {
		config.Data.OutDir = v
	}
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 配置文件不存在，使用默认配置
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// resolveDir 相对路径按可执行文件目录解析，绝对路径原样使用
func resolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, dir)
}

// EnsureDirs 确保数据目录与输出目录存在，返回解析后的路径
func EnsureDirs(config *AppConfig) (dataDir, outDir string, err error) {
	dataDir = resolveDir(config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", "", err
	}

	outDir = resolveDir(config.Data.OutDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", "", err
	}

	return dataDir, outDir, nil
}
