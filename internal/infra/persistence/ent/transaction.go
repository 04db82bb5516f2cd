/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-03 23:40:12
 * @LastEditTime: 2025-10-18 18:33:59
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
)

// entTransactionManager 是完全基于 Ent 的事务管理器实现。
type entTransactionManager struct {
	entClient *ent.Client
}

// NewEntTransactionManager 是 entTransactionManager 的构造函数。
func NewEntTransactionManager(client *ent.Client) repository.TransactionManager {
	return &entTransactionManager{
		entClient: client,
	}
}

// Do 实现了 TransactionManager 接口。
// 它会开启一个 Ent 事务，并将 Repositories 结构体中定义的所有仓库包裹在这个事务中。
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启 Ent 事务失败: %w", err)
	}

	// 确保 panic 时事务回滚
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		Asset:       NewEntAssetRepository(tx.Client()),
		ContentBlob: NewEntContentBlobRepository(tx.Client()),
		LineageEdge: NewEntLineageEdgeRepository(tx.Client()),
		Generation:  NewEntGenerationRepository(tx.Client()),
		Metadata:    NewEntMetadataRepository(tx.Client()),
		Setting:     NewEntSettingRepository(tx.Client()),
		User:        NewEntUserRepository(tx.Client()),
	}

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交 Ent 事务失败: %w", err)
	}
	return nil
}
