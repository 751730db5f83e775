package api

import (
	"strconv"

	"moneytracker/database"
	"moneytracker/middleware"
	"moneytracker/models"
	"moneytracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SavingsGoalHandler 储蓄目标
type SavingsGoalHandler struct {
	opts []service.Option
}

// NewSavingsGoalHandler 创建储蓄目标处理器
func NewSavingsGoalHandler(opts ...service.Option) *SavingsGoalHandler {
	return &SavingsGoalHandler{opts: opts}
}

func (h *SavingsGoalHandler) ledger() *service.LedgerService {
	return service.NewLedgerService(database.DB, h.opts...)
}

type CreateSavingsGoalRequest struct {
	Name                string           `json:"name" binding:"required" example:"旅行基金"`
	TargetAmount        decimal.Decimal  `json:"targetAmount" swaggertype:"string" example:"10000"`
	CurrentAmount       *decimal.Decimal `json:"currentAmount" swaggertype:"string" example:"0"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution" swaggertype:"string" example:"500"`
	TargetDate          *models.Date     `json:"targetDate" swaggertype:"string" example:"2025-01-01"`
	Icon                string           `json:"icon" example:"plane"`
	Color               string           `json:"color" example:"primary"`
	IsActive            *bool            `json:"isActive"`
}

type UpdateSavingsGoalRequest struct {
	Name                *string          `json:"name"`
	TargetAmount        *decimal.Decimal `json:"targetAmount" swaggertype:"string"`
	CurrentAmount       *decimal.Decimal `json:"currentAmount" swaggertype:"string"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution" swaggertype:"string"`
	TargetDate          *models.Date     `json:"targetDate" swaggertype:"string"`
	Icon                *string          `json:"icon"`
	Color               *string          `json:"color"`
	IsActive            *bool            `json:"isActive"`
}

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

// nonNegative 金额保留两位小数且不能为负
func nonNegative(d decimal.Decimal) (decimal.Decimal, bool) {
	d = d.Round(2)
	return d, !d.IsNegative()
}

// List 获取储蓄目标列表
// @Summary 获取储蓄目标列表
// @Description 按创建时间倒序，active 可按启用状态过滤
// @Tags 储蓄
// @Produce json
// @Security BearerAuth
// @Param active query bool false "是否启用"
// @Success 200 {array} models.SavingsGoal "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/savings-goals [get]
func (h *SavingsGoalHandler) List(c *gin.Context) {
	query := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c))
	if active := c.Query("active"); active != "" {
		v, err := strconv.ParseBool(active)
		if err != nil {
			BadRequest(c, "active 参数错误")
			return
		}
		query = query.Where("is_active = ?", v)
	}
	list := []models.SavingsGoal{}
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		handleServiceError(c, err, "获取储蓄目标失败")
		return
	}
	Success(c, list)
}

// Get 获取单个储蓄目标
// @Summary 获取储蓄目标
// @Tags 储蓄
// @Produce json
// @Security BearerAuth
// @Param id path string true "储蓄目标ID"
// @Success 200 {object} models.SavingsGoal "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id} [get]
func (h *SavingsGoalHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := h.ledger().FindSavingsGoal(middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "获取储蓄目标失败")
		return
	}
	Success(c, g)
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Tags 储蓄
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSavingsGoalRequest true "储蓄目标"
// @Success 200 {object} models.SavingsGoal "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/savings-goals [post]
func (h *SavingsGoalHandler) Create(c *gin.Context) {
	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	target, err := service.NormalizeAmount(req.TargetAmount)
	if err != nil {
		BadRequest(c, "目标金额必须为正数")
		return
	}

	g := models.SavingsGoal{
		UserID:       middleware.GetCurrentUserID(c),
		Name:         req.Name,
		TargetAmount: target,
		TargetDate:   req.TargetDate,
		Icon:         req.Icon,
		Color:        req.Color,
		IsActive:     true,
	}
	if req.CurrentAmount != nil {
		current, ok := nonNegative(*req.CurrentAmount)
		if !ok {
			BadRequest(c, "当前金额不能为负数")
			return
		}
		g.CurrentAmount = current
	}
	if req.MonthlyContribution != nil {
		monthly, ok := nonNegative(*req.MonthlyContribution)
		if !ok {
			BadRequest(c, "每月存入金额不能为负数")
			return
		}
		g.MonthlyContribution = &monthly
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&g).Error; err != nil {
		handleServiceError(c, err, "创建储蓄目标失败")
		return
	}
	g.RefreshProgress()
	Success(c, g)
}

// Update 更新储蓄目标
// @Summary 更新储蓄目标
// @Tags 储蓄
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "储蓄目标ID"
// @Param request body UpdateSavingsGoalRequest true "储蓄目标"
// @Success 200 {object} models.SavingsGoal "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id} [put]
func (h *SavingsGoalHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			BadRequest(c, "名称不能为空")
			return
		}
		updates["name"] = *req.Name
	}
	if req.TargetAmount != nil {
		target, err := service.NormalizeAmount(*req.TargetAmount)
		if err != nil {
			BadRequest(c, "目标金额必须为正数")
			return
		}
		updates["target_amount"] = target
	}
	if req.CurrentAmount != nil {
		current, ok := nonNegative(*req.CurrentAmount)
		if !ok {
			BadRequest(c, "当前金额不能为负数")
			return
		}
		updates["current_amount"] = current
	}
	if req.MonthlyContribution != nil {
		monthly, ok := nonNegative(*req.MonthlyContribution)
		if !ok {
			BadRequest(c, "每月存入金额不能为负数")
			return
		}
		updates["monthly_contribution"] = monthly
	}
	if req.TargetDate != nil {
		updates["target_date"] = *req.TargetDate
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	ledger := h.ledger()
	userID := middleware.GetCurrentUserID(c)
	g, err := ledger.FindSavingsGoal(userID, id)
	if err != nil {
		handleServiceError(c, err, "更新储蓄目标失败")
		return
	}
	if len(updates) > 0 {
		if err := database.DB.Model(g).Updates(updates).Error; err != nil {
			handleServiceError(c, err, "更新储蓄目标失败")
			return
		}
	}
	if g, err = ledger.FindSavingsGoal(userID, id); err != nil {
		handleServiceError(c, err, "更新储蓄目标失败")
		return
	}
	Success(c, g)
}

// Deposit 向储蓄目标存入金额
// @Summary 存入储蓄
// @Description 当前金额增加 amount，可超过目标金额
// @Tags 储蓄
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "储蓄目标ID"
// @Param request body DepositRequest true "存入金额"
// @Success 200 {object} models.SavingsGoal "存入成功"
// @Failure 400 {object} Response "金额无效"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id}/add [post]
func (h *SavingsGoalHandler) Deposit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请提供有效的金额")
		return
	}
	g, err := h.ledger().Deposit(middleware.GetCurrentUserID(c), id, req.Amount)
	if err != nil {
		handleServiceError(c, err, "存入失败")
		return
	}
	Success(c, g)
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Tags 储蓄
// @Produce json
// @Security BearerAuth
// @Param id path string true "储蓄目标ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/savings-goals/{id} [delete]
func (h *SavingsGoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result := database.DB.Where("id = ? AND user_id = ?", id, middleware.GetCurrentUserID(c)).
		Delete(&models.SavingsGoal{})
	if result.Error != nil {
		handleServiceError(c, result.Error, "删除储蓄目标失败")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "记录不存在")
		return
	}
	Message(c, "删除成功")
}
