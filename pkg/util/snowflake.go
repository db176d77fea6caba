package util

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

// InitSnowflake 初始化雪花算法节点（进程启动时调用一次）。
// nodeID 取部署实例编号，多实例部署时必须互不相同。
func InitSnowflake(nodeID int64) error {
	var err error
	snowflakeOnce.Do(func() {
		snowflakeNode, err = snowflake.NewNode(nodeID)
	})
	return err
}

// NextID 生成全局唯一 ID。
// 未初始化时 panic：属于编码错误，必须在 main 中先 InitSnowflake。
func NextID() int64 {
	if snowflakeNode == nil {
		panic("snowflake node not initialized")
	}
	return snowflakeNode.Generate().Int64()
}

// NextIDString 生成全局唯一 ID 的字符串形式（用于订单号、对象名等）。
func NextIDString() string {
	return fmt.Sprintf("%d", NextID())
}
