package config

import (
	"os"
	"strconv"
)

// 环境变量覆盖。
// 约定：只覆盖部署时必须变化的字段（密钥、连接地址），其余走默认值。

// EnvString 读取字符串环境变量，未设置时返回默认值。
func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt 读取整数环境变量，未设置或非法时返回默认值。
func EnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvBool 读取布尔环境变量，未设置或非法时返回默认值。
func EnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
