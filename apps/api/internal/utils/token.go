package utils

import (
	"BridgerServer/config"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims JWT 载荷
// 只带用户ID，其余信息每次请求回源查询，避免 Token 里的资料过期
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

var (
	// ErrInvalidToken Token 无效（签名错误、格式错误）
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired Token 已过期
	ErrTokenExpired = errors.New("token expired")
)

// GenerateToken 签发 JWT（HS256）
func GenerateToken(cfg config.JWTConfig, userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ExpiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken 解析并校验 JWT
// 过期返回 ErrTokenExpired，其余校验失败返回 ErrInvalidToken
func ParseToken(cfg config.JWTConfig, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// 只接受 HMAC 签名，防止算法替换攻击
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
