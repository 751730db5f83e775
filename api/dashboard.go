package api

import (
	"moneytracker/database"
	"moneytracker/middleware"
	"moneytracker/models"
	"moneytracker/service"

	"github.com/gin-gonic/gin"
)

const (
	dashboardBillLimit = 3
	dashboardGoalLimit = 2
)

// DashboardHandler 首页
type DashboardHandler struct {
	opts []service.Option
}

// NewDashboardHandler 创建首页处理器
func NewDashboardHandler(opts ...service.Option) *DashboardHandler {
	return &DashboardHandler{opts: opts}
}

// DashboardResponse 首页数据
type DashboardResponse struct {
	service.DashboardSummary
	UpcomingBills []models.Bill        `json:"upcomingBills"`
	SavingsGoals  []models.SavingsGoal `json:"savingsGoals"`
}

// Get 获取首页数据
// @Summary 首页汇总
// @Description 当前余额、本月收入与支出、储蓄总额，附最近 3 笔即将到期账单和 2 个储蓄目标
// @Tags 首页
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	ledger := service.NewLedgerService(database.DB, h.opts...)

	summary, err := ledger.Dashboard(userID)
	if err != nil {
		handleServiceError(c, err, "获取首页数据失败")
		return
	}
	bills, err := ledger.UpcomingBills(userID)
	if err != nil {
		handleServiceError(c, err, "获取首页数据失败")
		return
	}
	var goals []models.SavingsGoal
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(dashboardGoalLimit).
		Find(&goals).Error; err != nil {
		handleServiceError(c, err, "获取首页数据失败")
		return
	}
	if goals == nil {
		goals = []models.SavingsGoal{}
	}
	if len(bills) > dashboardBillLimit {
		bills = bills[:dashboardBillLimit]
	}

	Success(c, DashboardResponse{
		DashboardSummary: *summary,
		UpcomingBills:    bills,
		SavingsGoals:     goals,
	})
}
