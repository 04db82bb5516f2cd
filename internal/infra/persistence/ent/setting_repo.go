package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/setting"
)

// entSettingRepository 是 SettingRepository 接口的 Ent 实现
type entSettingRepository struct {
	client *ent.Client
}

// NewEntSettingRepository 是 entSettingRepository 的构造函数
func NewEntSettingRepository(client *ent.Client) repository.SettingRepository {
	return &entSettingRepository{
		client: client,
	}
}

// Update 实现了批量更新配置项的接口。
// 为了保证原子性，整个更新过程在一个 Ent 事务中执行。
func (r *entSettingRepository) Update(ctx context.Context, settingsToUpdate map[string]string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	for key, value := range settingsToUpdate {
		_, err := tx.Setting.
			Update().
			Where(
				setting.ConfigKey(key),
				setting.DeletedAtIsNil(),
			).
			SetValue(value).
			Save(ctx)

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("更新配置失败: %v, 回滚事务也失败: %v", err, rbErr)
			}
			return err
		}
	}

	return tx.Commit()
}

// FindByKey 实现按键查找配置的接口。未找到时返回 nil, nil。
func (r *entSettingRepository) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	entSetting, err := r.client.Setting.
		Query().
		Where(
			setting.ConfigKey(key),
			setting.DeletedAtIsNil(),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainSetting(entSetting), nil
}

// Save 实现保存（创建或更新）配置的接口。
func (r *entSettingRepository) Save(ctx context.Context, s *model.Setting) error {
	if s.ID == 0 {
		created, err := r.client.Setting.
			Create().
			SetConfigKey(s.ConfigKey).
			SetValue(s.Value).
			SetComment(s.Comment).
			Save(ctx)
		if err != nil {
			return err
		}
		s.ID = uint(created.ID)
		s.CreatedAt = created.CreatedAt
		s.UpdatedAt = created.UpdatedAt
		return nil
	}

	updated, err := r.client.Setting.
		UpdateOneID(int(s.ID)).
		SetValue(s.Value).
		SetComment(s.Comment).
		Save(ctx)
	if err != nil {
		return err
	}
	s.UpdatedAt = updated.UpdatedAt
	return nil
}

// FindAll 返回所有未删除的配置项。
func (r *entSettingRepository) FindAll(ctx context.Context) ([]*model.Setting, error) {
	entSettings, err := r.client.Setting.
		Query().
		Where(setting.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	domainSettings := make([]*model.Setting, len(entSettings))
	for i, s := range entSettings {
		domainSettings[i] = toDomainSetting(s)
	}
	return domainSettings, nil
}

// toDomainSetting 将 ent 生成的配置对象转换为领域模型对象。
func toDomainSetting(s *ent.Setting) *model.Setting {
	if s == nil {
		return nil
	}
	return &model.Setting{
		ID:        uint(s.ID),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		ConfigKey: s.ConfigKey,
		Value:     s.Value,
		Comment:   s.Comment,
	}
}
