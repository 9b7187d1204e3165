package server

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/chirine05/costbench-api/internal/api/v1"
	"github.com/chirine05/costbench-api/internal/config"
	"github.com/chirine05/costbench-api/internal/fetcher"
	"github.com/chirine05/costbench-api/internal/importer"
	"github.com/chirine05/costbench-api/internal/store"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
	outDir string
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据目录与输出目录
	dataDir, outDir, err := config.EnsureDirs(cfg)
	if err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}
	dbPath := filepath.Join(dataDir, "costbench.db")

	// 初始化 SQLite Store
	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 创建构建协调器
	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	coordinator := importer.NewCoordinator(sqliteStore, fetcher.NewFetcher(timeout), outDir)

	// 创建 API 处理器
	v1Handler := v1.NewHandler(sqliteStore, coordinator, cfg)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		v1:     v1Handler,
		outDir: outDir,
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, x-api-key")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	s.v1.RegisterRoutes(s.router)

	// 生成的工作簿静态托管
	s.router.Static("/out", s.outDir)
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 关闭底层存储
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
