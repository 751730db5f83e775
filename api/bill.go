package api

import (
	"errors"
	"net/http"
	"strconv"

	"moneytracker/config"
	"moneytracker/database"
	"moneytracker/middleware"
	"moneytracker/models"
	"moneytracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BillHandler 账单
type BillHandler struct {
	opts   []service.Option
	mailer *service.EmailService
}

// NewBillHandler 创建账单处理器
func NewBillHandler(opts ...service.Option) *BillHandler {
	return &BillHandler{opts: opts}
}

// WithMailer 设置提醒邮件服务
func (h *BillHandler) WithMailer(m *service.EmailService) *BillHandler {
	h.mailer = m
	return h
}

func (h *BillHandler) ledger() *service.LedgerService {
	return service.NewLedgerService(database.DB, h.opts...)
}

func (h *BillHandler) emailService() *service.EmailService {
	if h.mailer != nil {
		return h.mailer
	}
	cfg := &config.EmailConfig{}
	if global := config.GetConfig(); global != nil {
		cfg = &global.Email
	}
	return service.NewEmailService(cfg)
}

type CreateBillRequest struct {
	Name        string           `json:"name" binding:"required" example:"房租"`
	Amount      decimal.Decimal  `json:"amount" swaggertype:"string" example:"3000"`
	DueDate     models.Date      `json:"dueDate" swaggertype:"string" example:"2024-06-10"`
	Frequency   models.Frequency `json:"frequency" binding:"required,oneof=one_time daily weekly monthly yearly" example:"monthly"`
	Category    string           `json:"category" example:"住房"`
	Icon        string           `json:"icon" example:"home"`
	Color       string           `json:"color" example:"destructive"`
	IsActive    *bool            `json:"isActive"`
	NextDueDate *models.Date     `json:"nextDueDate" swaggertype:"string"`
}

type UpdateBillRequest struct {
	Name        *string           `json:"name"`
	Amount      *decimal.Decimal  `json:"amount" swaggertype:"string"`
	DueDate     *models.Date      `json:"dueDate" swaggertype:"string"`
	Frequency   *models.Frequency `json:"frequency" binding:"omitempty,oneof=one_time daily weekly monthly yearly"`
	Category    *string           `json:"category"`
	Icon        *string           `json:"icon"`
	Color       *string           `json:"color"`
	IsActive    *bool             `json:"isActive"`
	IsPaid      *bool             `json:"isPaid"`
	PaidDate    *models.Date      `json:"paidDate" swaggertype:"string"`
	NextDueDate *models.Date      `json:"nextDueDate" swaggertype:"string"`
}

// List 获取账单列表
// @Summary 获取账单列表
// @Description 按创建时间倒序，可按付款状态和启用状态过滤
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param status query string false "paid 或 unpaid"
// @Param active query bool false "是否启用"
// @Success 200 {array} models.Bill "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/bills [get]
func (h *BillHandler) List(c *gin.Context) {
	query := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c))
	switch c.Query("status") {
	case "":
	case "paid":
		query = query.Where("is_paid = ?", true)
	case "unpaid":
		query = query.Where("is_paid = ?", false)
	default:
		BadRequest(c, "status 参数错误，应为 paid 或 unpaid")
		return
	}
	if active := c.Query("active"); active != "" {
		v, err := strconv.ParseBool(active)
		if err != nil {
			BadRequest(c, "active 参数错误")
			return
		}
		query = query.Where("is_active = ?", v)
	}

	list := []models.Bill{}
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		handleServiceError(c, err, "获取账单失败")
		return
	}
	service.MarkOverdue(list, h.ledger().Now())
	Success(c, list)
}

// Upcoming 即将到期账单
// @Summary 即将到期账单
// @Description 启用、未付且在今天起 7 天内到期的账单，按到期日升序
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Bill "获取成功"
// @Router /api/bills/upcoming [get]
func (h *BillHandler) Upcoming(c *gin.Context) {
	bills, err := h.ledger().UpcomingBills(middleware.GetCurrentUserID(c))
	if err != nil {
		handleServiceError(c, err, "获取即将到期账单失败")
		return
	}
	Success(c, bills)
}

// NotifyUpcoming 发送即将到期账单提醒邮件
// @Summary 发送账单提醒
// @Description 将即将到期账单列表发送到当前用户邮箱
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse "发送成功"
// @Failure 400 {object} Response "用户未设置邮箱"
// @Failure 503 {object} Response "邮件服务未启用"
// @Router /api/bills/upcoming/notify [post]
func (h *BillHandler) NotifyUpcoming(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}
	if user.Email == nil || *user.Email == "" {
		BadRequest(c, "用户未设置邮箱")
		return
	}

	bills, err := h.ledger().UpcomingBills(userID)
	if err != nil {
		handleServiceError(c, err, "获取即将到期账单失败")
		return
	}
	if err := h.emailService().SendUpcomingBillsEmail(*user.Email, user.FirstName, bills); err != nil {
		if errors.Is(err, service.ErrEmailDisabled) {
			Error(c, http.StatusServiceUnavailable, "邮件服务未启用")
			return
		}
		handleServiceError(c, err, "发送提醒邮件失败")
		return
	}
	Message(c, "提醒邮件已发送")
}

// Get 获取账单
// @Summary 获取账单
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Success 200 {object} models.Bill "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/bills/{id} [get]
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.ledger().FindBill(middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "获取账单失败")
		return
	}
	Success(c, b)
}

// Create 创建账单
// @Summary 创建账单
// @Description nextDueDate 未提供时等于 dueDate
// @Tags 账单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBillRequest true "账单信息"
// @Success 200 {object} models.Bill "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	amount, ok := nonNegative(req.Amount)
	if !ok {
		BadRequest(c, "金额不能为负")
		return
	}
	if req.DueDate.IsZero() {
		BadRequest(c, "请提供到期日")
		return
	}

	b := models.Bill{
		UserID:      middleware.GetCurrentUserID(c),
		Name:        req.Name,
		Amount:      amount,
		DueDate:     req.DueDate,
		Frequency:   req.Frequency,
		Category:    req.Category,
		Icon:        req.Icon,
		Color:       req.Color,
		IsActive:    true,
		NextDueDate: req.NextDueDate,
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&b).Error; err != nil {
		handleServiceError(c, err, "创建账单失败")
		return
	}
	b.IsOverdue = service.IsOverdue(b, h.ledger().Now())
	Success(c, b)
}

// Update 更新账单
// @Summary 更新账单
// @Description 部分更新；周期账单付款后可通过 nextDueDate 推进下次到期日
// @Tags 账单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Param request body UpdateBillRequest true "账单信息"
// @Success 200 {object} models.Bill "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/bills/{id} [put]
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateBillRequest
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
	if req.Amount != nil {
		amount, ok := nonNegative(*req.Amount)
		if !ok {
			BadRequest(c, "金额不能为负")
			return
		}
		updates["amount"] = amount
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			BadRequest(c, "请提供到期日")
			return
		}
		updates["due_date"] = *req.DueDate
	}
	if req.Frequency != nil {
		updates["frequency"] = *req.Frequency
	}
	if req.Category != nil {
		updates["category"] = *req.Category
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
	if req.IsPaid != nil {
		updates["is_paid"] = *req.IsPaid
	}
	if req.PaidDate != nil {
		updates["paid_date"] = *req.PaidDate
	}
	if req.NextDueDate != nil {
		updates["next_due_date"] = *req.NextDueDate
	}

	ledger := h.ledger()
	userID := middleware.GetCurrentUserID(c)
	b, err := ledger.FindBill(userID, id)
	if err != nil {
		handleServiceError(c, err, "更新账单失败")
		return
	}
	if len(updates) > 0 {
		if err := database.DB.Model(b).Updates(updates).Error; err != nil {
			handleServiceError(c, err, "更新账单失败")
			return
		}
	}
	if b, err = ledger.FindBill(userID, id); err != nil {
		handleServiceError(c, err, "更新账单失败")
		return
	}
	Success(c, b)
}

// Pay 标记账单已付
// @Summary 标记已付
// @Description isPaid 置为 true，paidDate 为今天；不推进 nextDueDate
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Success 200 {object} models.Bill "标记成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/bills/{id}/pay [post]
func (h *BillHandler) Pay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.ledger().MarkBillPaid(middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "标记账单失败")
		return
	}
	Success(c, b)
}

// Delete 删除账单
// @Summary 删除账单
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path string true "账单ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/bills/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result := database.DB.Where("id = ? AND user_id = ?", id, middleware.GetCurrentUserID(c)).
		Delete(&models.Bill{})
	if result.Error != nil {
		handleServiceError(c, result.Error, "删除账单失败")
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "记录不存在")
		return
	}
	Message(c, "删除成功")
}
