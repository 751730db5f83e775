package service

import (
	"fmt"
	"html"
	"strings"

	"moneytracker/config"
	"moneytracker/models"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 邮件服务未启用
var ErrEmailDisabled = fmt.Errorf("邮件服务未启用，请配置 MONEY_EMAIL_ENABLED=true")

// EmailService 邮件服务
type EmailService struct {
	cfg    *config.EmailConfig
	sender func(*gomail.Message) error
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	s.sender = s.dialAndSend
	return s
}

// SendUpcomingBillsEmail 发送即将到期账单提醒
func (s *EmailService) SendUpcomingBillsEmail(toEmail, name string, bills []models.Bill) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if toEmail == "" {
		return fmt.Errorf("用户未设置邮箱")
	}

	subject := fmt.Sprintf("【记账助手】%d 笔账单即将到期", len(bills))
	body := s.generateUpcomingBillsBody(name, bills)

	return s.sendEmail(toEmail, subject, body)
}

// generateUpcomingBillsBody 生成账单提醒邮件内容
func (s *EmailService) generateUpcomingBillsBody(name string, bills []models.Bill) string {
	if name == "" {
		name = "用户"
	}

	var rows strings.Builder
	for _, b := range bills {
		status := ""
		if b.IsOverdue {
			status = `<span class="overdue">已逾期</span>`
		}
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td class=\"amount\">%s</td><td>%s</td></tr>\n",
			html.EscapeString(b.Name),
			b.EffectiveDueDate().String(),
			b.Amount.StringFixed(2),
			status)
	}
	if len(bills) == 0 {
		rows.WriteString(`<tr><td colspan="4">未来 7 天没有待付账单</td></tr>`)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #ef4444, #b91c1c); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; }
        th, td { padding: 10px; border-bottom: 1px solid #eee; text-align: left; font-size: 14px; }
        th { background: #f8f9fa; }
        .amount { text-align: right; font-family: 'Courier New', monospace; }
        .overdue { color: #b91c1c; font-weight: 600; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 账单提醒</h1>
        </div>
        <div class="content">
            <p>%s，您好！</p>
            <p>以下账单将在 %d 天内到期：</p>
            <table>
                <tr><th>账单</th><th>到期日</th><th class="amount">金额</th><th></th></tr>
%s            </table>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 记账助手 - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(name), UpcomingDays, rows.String())
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.sender(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

func (s *EmailService) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
