package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"recipe-assistant/internal/infrastructure/config"
	"recipe-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Mailer 郵件發送介面
type Mailer interface {
	Send(to []string, subject string, htmlBody string) error
}

// SMTPMailer 使用 SMTP 發送郵件
type SMTPMailer struct {
	config *config.SMTPConfig
}

// NewSMTPMailer 創建 SMTP 郵件發送器
func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: cfg}
}

// Send 發送 HTML 郵件
func (m *SMTPMailer) Send(to []string, subject string, htmlBody string) error {
	if m.config.Host == "" {
		return common.NewError("SMTP_NOT_CONFIGURED", "SMTP 未設定", 503, nil)
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	msg := buildMessage(m.config.From, to, subject, htmlBody)

	if err := smtp.SendMail(addr, auth, m.config.From, to, msg); err != nil {
		common.LogError("郵件發送失敗",
			zap.String("host", m.config.Host),
			zap.Int("recipients", len(to)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	common.LogInfo("郵件發送成功",
		zap.String("subject", subject),
		zap.Int("recipients", len(to)),
	)
	return nil
}

// buildMessage 組合 MIME 郵件內容
func buildMessage(from string, to []string, subject string, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
