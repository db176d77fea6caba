package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail 对邮箱进行脱敏处理
// 示例: example@gmail.com -> e*****e@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	username := parts[0]
	if utf8.RuneCountInString(username) <= 2 {
		return email
	}
	return string(username[0]) + "*****" + string(username[len(username)-1]) + "@" + parts[1]
}

// MaskPassword 对密码进行脱敏（只显示长度）
// 示例: password123 -> *********(10)
func MaskPassword(password string) string {
	if password == "" {
		return ""
	}
	return "*" + strings.Repeat("*", len(password)-1) + "(" + string(rune('0'+len(password)%10)) + ")"
}
