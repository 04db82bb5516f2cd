/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-02 13:07:24
 * @LastEditTime: 2025-10-11 18:58:50
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// UserRepository 定义了所有用户数据操作的契约。
type UserRepository interface {
	// FindByID 根据用户id(number)查找用户
	FindByID(ctx context.Context, id uint) (*model.User, error)

	// FindByUsername 根据用户名(string)查找用户
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByExternalID 根据外部身份系统的主体标识查找用户
	FindByExternalID(ctx context.Context, externalID string) (*model.User, error)

	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
}
