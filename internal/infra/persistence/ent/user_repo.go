package ent

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/user"
)

// entUserRepository 是 UserRepository 接口的 Ent 实现。
type entUserRepository struct {
	client *ent.Client
}

// NewEntUserRepository 是 entUserRepository 的构造函数。
func NewEntUserRepository(client *ent.Client) repository.UserRepository {
	return &entUserRepository{client: client}
}

// FindByID 根据用户ID查找用户。
func (r *entUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entUser, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByUsername 根据用户名查找用户。
func (r *entUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entUser, err := r.client.User.Query().
		Where(user.UsernameEQ(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// FindByExternalID 根据外部身份系统的主体标识查找用户。
func (r *entUserRepository) FindByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	entUser, err := r.client.User.Query().
		Where(user.ExternalIDEQ(externalID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainUser(entUser), nil
}

// Create 创建一个新用户。
func (r *entUserRepository) Create(ctx context.Context, u *model.User) error {
	createBuilder := r.client.User.
		Create().
		SetUsername(u.Username).
		SetEmail(u.Email).
		SetExternalID(u.ExternalID).
		SetStatus(u.Status)
	if u.LastLoginAt != nil {
		createBuilder.SetLastLoginAt(*u.LastLoginAt)
	}
	created, err := createBuilder.Save(ctx)
	if err != nil {
		return err
	}
	u.ID = created.ID
	u.CreatedAt = created.CreatedAt
	u.UpdatedAt = created.UpdatedAt
	return nil
}

// Update 更新一个已存在的用户。
func (r *entUserRepository) Update(ctx context.Context, u *model.User) error {
	updateBuilder := r.client.User.
		UpdateOneID(u.ID).
		SetUsername(u.Username).
		SetEmail(u.Email).
		SetExternalID(u.ExternalID).
		SetStatus(u.Status)
	if u.LastLoginAt != nil {
		updateBuilder.SetLastLoginAt(*u.LastLoginAt)
	}
	updated, err := updateBuilder.Save(ctx)
	if err != nil {
		return err
	}
	u.UpdatedAt = updated.UpdatedAt
	return nil
}

// toDomainUser 将 ent 生成的用户对象转换为领域模型对象。
func toDomainUser(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	domain := &model.User{
		ID:         u.ID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		Username:   u.Username,
		Email:      u.Email,
		ExternalID: u.ExternalID,
		Status:     u.Status,
	}
	if u.LastLoginAt != nil {
		domain.LastLoginAt = u.LastLoginAt
	}
	return domain
}
