// pkg/service/setting/service.go
package setting

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/anzhiyu-c/mediaflow/internal/configdef"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
)

// TopicSettingUpdated 定义了配置更新事件的主题（Topic）
const TopicSettingUpdated = "setting:updated"

// SettingUpdatedEvent 定义了配置更新事件的数据结构
type SettingUpdatedEvent struct {
	Key   string
	Value string
}

// SettingService 定义了配置服务的接口
type SettingService interface {
	EnsureDefaults(ctx context.Context) error
	LoadAllSettings(ctx context.Context) error
	Get(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	UpdateSettings(ctx context.Context, settingsToUpdate map[string]string) error
	IsPublicSetting(key string) bool
}

// settingService 是 SettingService 接口的实现
type settingService struct {
	repo          repository.SettingRepository
	cache         map[string]string
	mu            sync.RWMutex
	publicSetting map[string]bool
	eventBus      *event.EventBus
}

// NewSettingService 是 settingService 的构造函数
func NewSettingService(repo repository.SettingRepository, bus *event.EventBus) SettingService {
	publicKeys := make(map[string]bool)
	for _, def := range configdef.AllSettings {
		if def.IsPublic {
			publicKeys[def.Key.String()] = true
		}
	}
	log.Printf("Setting Service 初始化完成，自动识别到 %d 个公开配置项。", len(publicKeys))

	return &settingService{
		repo:          repo,
		cache:         make(map[string]string),
		publicSetting: publicKeys,
		eventBus:      bus,
	}
}

// EnsureDefaults 将代码中定义但数据库中缺失的配置项写入数据库。
// 已存在的配置项保持不变，不会被默认值覆盖。
// 首次写入时可通过环境变量 MF_SETTING_DEFAULT_<KEY> 覆盖代码默认值。
func (s *settingService) EnsureDefaults(ctx context.Context) error {
	created := 0
	for _, def := range configdef.AllSettings {
		existing, err := s.repo.FindByKey(ctx, def.Key.String())
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		value := def.Value
		envKey := "MF_SETTING_DEFAULT_" + strings.ToUpper(def.Key.String())
		if envValue, ok := os.LookupEnv(envKey); ok {
			value = envValue
			log.Printf("配置项 '%s' 的默认值由环境变量 %s 覆盖。", def.Key, envKey)
		}

		if err := s.repo.Save(ctx, &model.Setting{
			ConfigKey: def.Key.String(),
			Value:     value,
			Comment:   def.Comment,
		}); err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		log.Printf("已写入 %d 个缺失的默认配置项。", created)
	}
	return nil
}

// LoadAllSettings 从代码定义和数据库中加载所有配置项到内存缓存。
func (s *settingService) LoadAllSettings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newCache := make(map[string]string)
	for _, def := range configdef.AllSettings {
		newCache[def.Key.String()] = def.Value
	}

	dbSettings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cache = newCache
		log.Printf("⚠️ 警告: 从数据库加载配置失败: %v。服务将使用代码中定义的默认配置。", err)
		return err
	}

	for _, dbSetting := range dbSettings {
		newCache[dbSetting.ConfigKey] = dbSetting.Value
	}

	s.cache = newCache

	log.Printf("所有配置已成功加载到缓存，共 %d 项。", len(s.cache))
	return nil
}

// UpdateSettings 更新一个或多个配置项，并发布变更事件
func (s *settingService) UpdateSettings(ctx context.Context, settingsToUpdate map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Update(ctx, settingsToUpdate); err != nil {
		return err
	}

	for key, value := range settingsToUpdate {
		s.cache[key] = value
		s.eventBus.Publish(event.Topic(TopicSettingUpdated), SettingUpdatedEvent{
			Key:   key,
			Value: value,
		})
	}

	log.Printf("成功更新 %d 个配置项，并已发布变更事件。", len(settingsToUpdate))
	return nil
}

// Get 根据键获取配置值
func (s *settingService) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key]
}

// GetBool 根据键获取布尔类型的配置值
func (s *settingService) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	valueStr := strings.ToLower(s.cache[key])
	b, _ := strconv.ParseBool(valueStr)
	return b
}

// GetInt 根据键获取整数配置值，解析失败返回 0
func (s *settingService) GetInt(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, _ := strconv.Atoi(s.cache[key])
	return n
}

// GetInt64 根据键获取64位整数配置值，解析失败返回 0
func (s *settingService) GetInt64(key string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, _ := strconv.ParseInt(s.cache[key], 10, 64)
	return n
}

// IsPublicSetting 检查配置是否为公开配置
func (s *settingService) IsPublicSetting(key string) bool {
	_, ok := s.publicSetting[key]
	return ok
}

// GetIntOrDefault 是带默认值的便捷读取，供需要保底值的调用方使用。
func GetIntOrDefault(svc SettingService, key constant.SettingKey, fallback int) int {
	if v := svc.GetInt(key.String()); v > 0 {
		return v
	}
	return fallback
}
