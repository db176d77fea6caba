package config

import (
	"fmt"
	"time"
)

// MySQLConfig MySQL 连接配置。
// Replicas 非空时启用读写分离（dbresolver），读请求路由到从库。
type MySQLConfig struct {
	Host     string `json:"host" yaml:"host"`         // 主库地址
	Port     int    `json:"port" yaml:"port"`         // 主库端口
	User     string `json:"user" yaml:"user"`         // 用户名
	Password string `json:"password" yaml:"password"` // 密码
	Database string `json:"database" yaml:"database"` // 数据库名
	Charset  string `json:"charset" yaml:"charset"`   // 字符集

	Replicas []string `json:"replicas" yaml:"replicas"` // 从库 DSN 列表（可为空）

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`       // 最大连接数
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`       // 最大空闲连接数
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"` // 连接最大存活时间
	SlowThreshold   time.Duration `json:"slowThreshold" yaml:"slowThreshold"`     // 慢查询阈值
}

// DSN 拼接主库 DSN。
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database, c.Charset)
}

// DefaultMySQLConfig 返回本地开发的默认配置。
func DefaultMySQLConfig() MySQLConfig {
	return MySQLConfig{
		Host:     "127.0.0.1",
		Port:     3306,
		User:     "root",
		Password: "root",
		Database: "bridger",
		Charset:  "utf8mb4",

		MaxOpenConns:    100,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Hour,
		SlowThreshold:   200 * time.Millisecond,
	}
}
