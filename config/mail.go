package config

// MailConfig SMTP 邮件配置。
// 只用于异步通知类邮件（志愿者报名确认），发送失败不影响主流程。
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`         // SMTP 服务器地址
	Port     int    `json:"port" yaml:"port"`         // SMTP 端口
	Username string `json:"username" yaml:"username"` // 登录用户名
	Password string `json:"password" yaml:"password"` // 登录密码
	From     string `json:"from" yaml:"from"`         // 发件人地址
	Enabled  bool   `json:"enabled" yaml:"enabled"`   // 是否启用（本地开发默认关闭）
}

// DefaultMailConfig 返回本地开发的默认配置。
func DefaultMailConfig() MailConfig {
	return MailConfig{
		Host:     "127.0.0.1",
		Port:     1025,
		Username: "",
		Password: "",
		From:     "no-reply@bridger.local",
		Enabled:  false,
	}
}
