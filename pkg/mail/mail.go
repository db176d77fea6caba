package mail

import (
	"errors"

	"BridgerServer/config"

	"gopkg.in/gomail.v2"
)

// ErrDisabled 邮件功能未启用。
var ErrDisabled = errors.New("mail sender disabled")

// Sender SMTP 邮件发送器。
// 只承载通知类邮件，调用方应放在异步任务里执行，失败不回滚业务。
type Sender struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

// NewSender 创建邮件发送器。
func NewSender(cfg config.MailConfig) *Sender {
	return &Sender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send 发送一封纯文本邮件。
func (s *Sender) Send(to, subject, body string) error {
	if !s.cfg.Enabled {
		return ErrDisabled
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
