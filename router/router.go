package router

import (
	"net/http"
	"time"

	"moneytracker/api"
	"moneytracker/config"
	_ "moneytracker/docs"
	"moneytracker/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	sessionRateLimit  = 10
	sessionRateWindow = time.Minute
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := api.NewAuthHandler()
	dashboardHandler := api.NewDashboardHandler()
	transactionHandler := api.NewTransactionHandler()
	savingsGoalHandler := api.NewSavingsGoalHandler()
	billHandler := api.NewBillHandler()

	apiGroup := r.Group("/api")
	{
		// 会话（无需登录）
		apiGroup.POST("/auth/session", middleware.RateLimit(sessionRateLimit, sessionRateWindow), authHandler.CreateSession)
		apiGroup.DELETE("/auth/session", authHandler.DeleteSession)

		authorized := apiGroup.Group("")
		authorized.Use(middleware.Authenticate())
		{
			authorized.GET("/auth/user", authHandler.GetUser)
			authorized.GET("/dashboard", dashboardHandler.Get)

			// 交易
			authorized.GET("/transactions", transactionHandler.List)
			authorized.GET("/transactions/export", transactionHandler.Export)
			authorized.GET("/transactions/:id", transactionHandler.Get)
			authorized.POST("/transactions", transactionHandler.Create)
			authorized.PUT("/transactions/:id", transactionHandler.Update)
			authorized.DELETE("/transactions/:id", transactionHandler.Delete)

			// 储蓄目标
			authorized.GET("/savings-goals", savingsGoalHandler.List)
			authorized.GET("/savings-goals/:id", savingsGoalHandler.Get)
			authorized.POST("/savings-goals", savingsGoalHandler.Create)
			authorized.PUT("/savings-goals/:id", savingsGoalHandler.Update)
			authorized.POST("/savings-goals/:id/add", savingsGoalHandler.Deposit)
			authorized.DELETE("/savings-goals/:id", savingsGoalHandler.Delete)

			// 账单
			authorized.GET("/bills", billHandler.List)
			authorized.GET("/bills/upcoming", billHandler.Upcoming)
			authorized.POST("/bills/upcoming/notify", billHandler.NotifyUpcoming)
			authorized.GET("/bills/:id", billHandler.Get)
			authorized.POST("/bills", billHandler.Create)
			authorized.PUT("/bills/:id", billHandler.Update)
			authorized.POST("/bills/:id/pay", billHandler.Pay)
			authorized.DELETE("/bills/:id", billHandler.Delete)
		}
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
// 会话依赖 Cookie，允许携带凭据时回显请求的 Origin
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		} else {
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
