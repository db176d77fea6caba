package config

import "time"

// JWTConfig 签发 Token 的配置。
// Secret 生产环境必须从环境变量注入（JWT_SECRET），默认值仅用于本地开发。
type JWTConfig struct {
	Secret      string        `json:"secret" yaml:"secret"`           // HMAC 签名密钥
	ExpiresIn   time.Duration `json:"expiresIn" yaml:"expiresIn"`     // Token 有效期
	Issuer      string        `json:"issuer" yaml:"issuer"`           // 签发者
	BearerToken bool          `json:"bearerToken" yaml:"bearerToken"` // 是否要求 Bearer 前缀
}

// DefaultJWTConfig 返回本地开发的默认配置。
func DefaultJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:      "bridger-dev-secret",
		ExpiresIn:   time.Hour,
		Issuer:      "bridger",
		BearerToken: true,
	}
}
