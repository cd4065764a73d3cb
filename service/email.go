package service

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"assetbook/config"
	"assetbook/models"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 邮件服务未启用
var ErrEmailDisabled = errors.New("메일 서비스가 비활성화되어 있습니다. ASSETBOOK_EMAIL_ENABLED=true 로 설정하세요")

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendReminderDigest 发送到期提醒汇总
func (s *EmailService) SendReminderDigest(today models.Date, items []DueReminder) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if len(items) == 0 {
		return nil
	}

	subject := fmt.Sprintf("[자산 관리] 만기 알림 %d건 (%s)", len(items), today.String())
	body := s.generateReminderEmailBody(today, items)

	return s.sendEmail(s.cfg.To, subject, body)
}

// generateReminderEmailBody 生成提醒汇总邮件内容
func (s *EmailService) generateReminderEmailBody(today models.Date, items []DueReminder) string {
	var rows strings.Builder
	for _, it := range items {
		fmt.Fprintf(&rows, `
                <tr>
                    <td>%s</td>
                    <td>%s</td>
                    <td>%s</td>
                    <td class="amount">%s</td>
                    <td>%s</td>
                    <td class="dday">%s</td>
                </tr>`,
			html.EscapeString(it.Tab),
			html.EscapeString(it.Asset.Category),
			html.EscapeString(it.Asset.Name),
			html.EscapeString(formatAmount(it.Asset.Amount)),
			it.Asset.MaturityDate.String(),
			it.DDay,
		)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Malgun Gothic', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 720px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; font-size: 14px; }
        th, td { border-bottom: 1px solid #e5e7eb; padding: 10px 8px; text-align: left; }
        th { background: #f8f9fa; color: #374151; }
        .amount { text-align: right; }
        .dday { font-weight: 600; color: #dc2626; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 자산 관리</h1>
        </div>
        <div class="content">
            <p>%s 기준으로 만기가 다가온 자산이 <strong>%d건</strong> 있습니다.</p>
            <table>
                <tr><th>탭</th><th>자산 종류</th><th>자산 명</th><th>금액</th><th>만기일</th><th>D-Day</th></tr>%s
            </table>
        </div>
        <div class="footer">
            <p>이 메일은 자동으로 발송되었습니다</p>
        </div>
    </div>
</body>
</html>
`, today.String(), len(items), rows.String())
}

func formatAmount(a models.Amount) string {
	if v, ok := a.Int64(); ok {
		return models.FormatCurrency(v)
	}
	return a.String()
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("수신 주소가 설정되지 않았습니다")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("메일 발송 실패: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if toEmail == "" {
		toEmail = s.cfg.To
	}

	subject := "[자산 관리] 메일 설정 테스트"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 메일 설정 완료</h2>
    <p>이 메일을 받으셨다면 메일 서비스가 올바르게 설정된 것입니다.</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
