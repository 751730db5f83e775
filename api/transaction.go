package api

import (
	"bytes"
	"fmt"
	"net/http"

	"moneytracker/database"
	"moneytracker/middleware"
	"moneytracker/models"
	"moneytracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler 收支记录
type TransactionHandler struct {
	opts []service.Option
}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler(opts ...service.Option) *TransactionHandler {
	return &TransactionHandler{opts: opts}
}

func (h *TransactionHandler) ledger() *service.LedgerService {
	return service.NewLedgerService(database.DB, h.opts...)
}

type CreateTransactionRequest struct {
	Type           models.TransactionType `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Amount         decimal.Decimal        `json:"amount" swaggertype:"string" example:"25.50"`
	Description    string                 `json:"description" binding:"required" example:"午餐"`
	Category       string                 `json:"category" example:"餐饮"`
	Date           models.Date            `json:"date" swaggertype:"string" example:"2024-06-15"`
	Frequency      models.Frequency       `json:"frequency" binding:"omitempty,oneof=one_time daily weekly monthly yearly" example:"one_time"`
	IsRecurring    bool                   `json:"isRecurring"`
	NextRecurrence *models.Date           `json:"nextRecurrence" swaggertype:"string"`
}

type UpdateTransactionRequest struct {
	Type           *models.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount         *decimal.Decimal        `json:"amount" swaggertype:"string"`
	Description    *string                 `json:"description"`
	Category       *string                 `json:"category"`
	Date           *models.Date            `json:"date" swaggertype:"string"`
	Frequency      *models.Frequency       `json:"frequency" binding:"omitempty,oneof=one_time daily weekly monthly yearly"`
	IsRecurring    *bool                   `json:"isRecurring"`
	NextRecurrence *models.Date            `json:"nextRecurrence" swaggertype:"string"`
}

type TransactionListRequest struct {
	StartDate string `form:"startDate" example:"2024-06-01"`
	EndDate   string `form:"endDate" example:"2024-06-30"`
	Type      string `form:"type" binding:"omitempty,oneof=income expense" example:"income"`
	Format    string `form:"format" binding:"omitempty,oneof=csv xlsx" example:"csv"`
}

// listQuery 按用户查询交易，起止日期同时提供时才过滤，按日期倒序
func (h *TransactionHandler) listQuery(c *gin.Context) ([]models.Transaction, *TransactionListRequest, bool) {
	userID := middleware.GetCurrentUserID(c)
	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return nil, nil, false
	}

	query := database.DB.Where("user_id = ?", userID)
	if req.StartDate != "" && req.EndDate != "" {
		start, err := models.ParseDate(req.StartDate)
		if err != nil {
			BadRequest(c, "开始日期格式错误，应为: 2006-01-02")
			return nil, nil, false
		}
		end, err := models.ParseDate(req.EndDate)
		if err != nil {
			BadRequest(c, "结束日期格式错误，应为: 2006-01-02")
			return nil, nil, false
		}
		query = query.Where("date >= ? AND date <= ?", start, end)
	}
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}

	list := []models.Transaction{}
	if err := query.Order("date DESC").Order("created_at DESC").Find(&list).Error; err != nil {
		handleServiceError(c, err, "获取交易记录失败")
		return nil, nil, false
	}
	return list, &req, true
}

// List 获取交易列表
// @Summary 获取交易列表
// @Description 获取当前用户的收支记录，同时提供 startDate 和 endDate 时按日期过滤
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "开始日期 (2024-06-01)"
// @Param endDate query string false "结束日期 (2024-06-30)"
// @Param type query string false "income 或 expense"
// @Success 200 {array} models.Transaction "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	list, _, ok := h.listQuery(c)
	if !ok {
		return
	}
	Success(c, list)
}

// Get 获取单条交易
// @Summary 获取单条交易
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path string true "交易ID"
// @Success 200 {object} models.Transaction "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.ledger().FindTransaction(middleware.GetCurrentUserID(c), id)
	if err != nil {
		handleServiceError(c, err, "获取交易失败")
		return
	}
	Success(c, t)
}

// Create 创建交易
// @Summary 创建交易
// @Description 新增一条收支记录并重算余额
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} models.Transaction "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	amount, err := service.NormalizeAmount(req.Amount)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Date.IsZero() {
		BadRequest(c, "请提供日期")
		return
	}

	t := models.Transaction{
		UserID:         middleware.GetCurrentUserID(c),
		Type:           req.Type,
		Amount:         amount,
		Description:    req.Description,
		Category:       req.Category,
		Date:           req.Date,
		Frequency:      req.Frequency,
		IsRecurring:    req.IsRecurring,
		NextRecurrence: req.NextRecurrence,
	}
	if err := h.ledger().CreateTransaction(&t); err != nil {
		handleServiceError(c, err, "创建交易失败")
		return
	}
	Success(c, t)
}

// Update 更新交易
// @Summary 更新交易
// @Description 部分更新交易记录并重算余额
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "交易ID"
// @Param request body UpdateTransactionRequest true "交易信息"
// @Success 200 {object} models.Transaction "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Amount != nil {
		amount, err := service.NormalizeAmount(*req.Amount)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		updates["amount"] = amount
	}
	if req.Description != nil {
		if *req.Description == "" {
			BadRequest(c, "描述不能为空")
			return
		}
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Date != nil {
		if req.Date.IsZero() {
			BadRequest(c, "请提供日期")
			return
		}
		updates["date"] = *req.Date
	}
	if req.Frequency != nil {
		updates["frequency"] = *req.Frequency
	}
	if req.IsRecurring != nil {
		updates["is_recurring"] = *req.IsRecurring
	}
	if req.NextRecurrence != nil {
		updates["next_recurrence"] = *req.NextRecurrence
	}

	t, err := h.ledger().UpdateTransaction(middleware.GetCurrentUserID(c), id, updates)
	if err != nil {
		handleServiceError(c, err, "更新交易失败")
		return
	}
	Success(c, t)
}

// Delete 删除交易
// @Summary 删除交易
// @Description 删除交易记录并重算余额
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path string true "交易ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ledger().DeleteTransaction(middleware.GetCurrentUserID(c), id); err != nil {
		handleServiceError(c, err, "删除交易失败")
		return
	}
	Message(c, "删除成功")
}

// Export 导出交易记录
// @Summary 导出交易记录
// @Description 导出为 CSV 或 Excel，日期过滤规则与列表相同
// @Tags 交易
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv 或 xlsx" default(csv)
// @Param startDate query string false "开始日期 (2024-06-01)"
// @Param endDate query string false "结束日期 (2024-06-30)"
// @Success 200 {file} file "导出文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/transactions/export [get]
func (h *TransactionHandler) Export(c *gin.Context) {
	list, req, ok := h.listQuery(c)
	if !ok {
		return
	}

	name := "transactions"
	if req.StartDate != "" && req.EndDate != "" {
		name = fmt.Sprintf("transactions_%s_%s", req.StartDate, req.EndDate)
	}

	if req.Format == "xlsx" {
		f, err := service.BuildTransactionsExcel(list)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
			return
		}
		defer f.Close()
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", name))
		if err := f.Write(c.Writer); err != nil {
			InternalError(c, "生成 Excel 失败")
		}
		return
	}

	buf := new(bytes.Buffer)
	if err := service.WriteTransactionsCSV(buf, list); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
