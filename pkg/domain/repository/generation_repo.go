/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 14:17:26
 * @LastEditTime: 2025-11-02 14:30:19
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// GenerationRepository 定义了生成记录的持久化接口。
type GenerationRepository interface {
	Create(ctx context.Context, gen *model.Generation) error
	FindByID(ctx context.Context, id uint) (*model.Generation, error)

	// FindByReproHash 返回指定用户下所有持有该可复现哈希的生成记录。
	FindByReproHash(ctx context.Context, ownerID uint, reproHash string) ([]*model.Generation, error)
}
