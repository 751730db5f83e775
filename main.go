package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"moneytracker/config"
	"moneytracker/database"
	"moneytracker/logger"
	"moneytracker/middleware"
	"moneytracker/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title 记账助手 API
// @version 1.0
// @description 个人记账 API，记录收支、管理账单与储蓄目标，首页汇总本月收支与余额
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
	tokenFor    string
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.StringVar(&tokenFor, "token", "", "为指定用户ID签发调试令牌（仅 debug 模式）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("记账助手 v1.0.0")
		return
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	if err := logger.Init(cfg.Log.Development, logger.LogLevel(cfg.Log.Level)); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	middleware.InitAuth(cfg)

	if tokenFor != "" {
		if config.IsRelease() {
			log.Fatalf("release 模式下不允许签发调试令牌")
		}
		claims := middleware.Claims{Email: tokenFor + "@example.com"}
		claims.Subject = tokenFor
		token, err := middleware.GenerateToken(claims, 24*time.Hour)
		if err != nil {
			log.Fatalf("签发令牌失败: %v", err)
		}
		fmt.Println(token)
		return
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		logger.Get().Fatal("数据库初始化失败", zap.Error(err))
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  💰 记账助手已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		logger.Get().Fatal("服务器启动失败", zap.Error(err))
	}
}
