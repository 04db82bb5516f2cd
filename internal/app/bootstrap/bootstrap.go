// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/user"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// DefaultOwnerID 是未接入外部身份系统时资产的默认归属用户。
const DefaultOwnerID = 1

type Bootstrapper struct {
	entClient *ent.Client
}

func NewBootstrapper(entClient *ent.Client) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
	}
}

func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	b.initDefaultOwner()
	b.checkUserTable()

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// initDefaultOwner 确保默认归属用户存在。
// 上传与同步接口在未传 owner_id 时回落到该用户。
func (b *Bootstrapper) initDefaultOwner() {
	ctx := context.Background()

	exists, err := b.entClient.User.Query().Where(user.ID(DefaultOwnerID)).Exist(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 查询默认归属用户失败: %v", err)
		return
	}
	if exists {
		return
	}

	_, createErr := b.entClient.User.Create().
		SetID(DefaultOwnerID).
		SetUsername("system").
		SetStatus(model.UserStatusActive).
		Save(ctx)
	if createErr != nil {
		log.Printf("⚠️ 失败: 创建默认归属用户失败: %v", createErr)
		return
	}
	log.Println("    - 已创建默认归属用户 'system' (ID=1)。")
}

// checkUserTable 打印用户表的当前规模，便于启动时快速确认库状态。
func (b *Bootstrapper) checkUserTable() {
	ctx := context.Background()

	count, err := b.entClient.User.Query().Count(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 统计用户表失败: %v", err)
		return
	}
	log.Printf("--- 用户表当前共有 %d 条记录 ---", count)
}
