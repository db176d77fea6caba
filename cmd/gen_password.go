package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 默认生成开发环境种子账号的密码，也可以通过参数指定
	plainPassword := "bridger123"
	if len(os.Args) > 1 {
		plainPassword = os.Args[1]
	}

	// 使用 bcrypt 加密密码，cost factor = 10
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("加密失败: %v\n", err)
		return
	}

	// 输出加密后的密码
	fmt.Printf("明文密码: %s\n", plainPassword)
	fmt.Printf("加密后的密码: %s\n", string(hashedPassword))
	fmt.Println("\n将加密后的密码复制到 seed SQL 中即可")
}
