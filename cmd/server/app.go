/*
 * @Description: 应用装配：初始化所有组件并完成依赖注入
 * @Author: 安知鱼
 * @Date: 2025-08-04 10:12:40
 * @LastEditTime: 2025-08-04 10:12:40
 * @LastEditors: 安知鱼
 */
// mediaflow/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/mediaflow/internal/app/bootstrap"
	"github.com/anzhiyu-c/mediaflow/internal/app/listener"
	"github.com/anzhiyu-c/mediaflow/internal/app/middleware"
	"github.com/anzhiyu-c/mediaflow/internal/app/task"
	"github.com/anzhiyu-c/mediaflow/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/mediaflow/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/mediaflow/internal/infra/router"
	"github.com/anzhiyu-c/mediaflow/internal/infra/storage"
	"github.com/anzhiyu-c/mediaflow/internal/pkg/event"
	"github.com/anzhiyu-c/mediaflow/pkg/config"
	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"
	asset_handler "github.com/anzhiyu-c/mediaflow/pkg/handler/asset"
	lineage_handler "github.com/anzhiyu-c/mediaflow/pkg/handler/lineage"
	"github.com/anzhiyu-c/mediaflow/pkg/idgen"
	asset_service "github.com/anzhiyu-c/mediaflow/pkg/service/asset"
	"github.com/anzhiyu-c/mediaflow/pkg/service/dedup"
	"github.com/anzhiyu-c/mediaflow/pkg/service/ingest"
	lineage_service "github.com/anzhiyu-c/mediaflow/pkg/service/lineage"
	"github.com/anzhiyu-c/mediaflow/pkg/service/media"
	"github.com/anzhiyu-c/mediaflow/pkg/service/provider"
	"github.com/anzhiyu-c/mediaflow/pkg/service/setting"
	"github.com/anzhiyu-c/mediaflow/pkg/service/utility"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	taskBroker *task.Broker
	sqlDB      *sql.DB
	eventBus   *event.EventBus
	settingSvc setting.SettingService
	cacheSvc   utility.CacheService
	assetRepo  repository.AssetRepository
	assetSvc   *asset_service.Service
	lineageSvc *lineage_service.Service
	pipeline   *ingest.Pipeline
}

func (a *App) PrintBanner() {
	banner := `

      ███╗   ███╗███████╗██████╗ ██╗ █████╗ ███████╗██╗      ██████╗ ██╗    ██╗
      ████╗ ████║██╔════╝██╔══██╗██║██╔══██╗██╔════╝██║     ██╔═══██╗██║    ██║
      ██╔████╔██║█████╗  ██║  ██║██║███████║█████╗  ██║     ██║   ██║██║ █╗ ██║
      ██║╚██╔╝██║██╔══╝  ██║  ██║██║██╔══██║██╔══╝  ██║     ██║   ██║██║███╗██║
      ██║ ╚═╝ ██║███████╗██████╔╝██║██║  ██║██║     ███████╗╚██████╔╝╚███╔███╔╝
      ╚═╝     ╚═╝╚══════╝╚═════╝ ╚═╝╚═╝  ╚═╝╚═╝     ╚══════╝ ╚═════╝  ╚══╝╚══╝

`
	log.Println(banner)
	log.Println("--------------------------------------------------------")
	log.Printf(" MediaFlow - %s", a.settingSvc.Get(constant.KeyAppVersion.String()))
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	eventBus := event.NewEventBus()
	dbType := cfg.GetString(config.KeyDBType)
	if dbType == "" {
		dbType = "sqlite"
	}
	if dbType == "mariadb" {
		dbType = "mysql"
	}

	// --- Phase 3: 初始化数据仓库层 ---
	settingRepo := ent_impl.NewEntSettingRepository(entClient)
	assetRepo := ent_impl.NewEntAssetRepository(entClient)
	generationRepo := ent_impl.NewEntGenerationRepository(entClient)
	metadataRepo := ent_impl.NewEntMetadataRepository(entClient)
	edgeRepo := ent_impl.NewEntLineageEdgeRepository(entClient)

	// --- Phase 4: 初始化应用引导程序 ---
	bootstrapper := bootstrap.NewBootstrapper(entClient)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		return nil, cleanup, fmt.Errorf("数据库初始化失败: %w", err)
	}

	// 历史数据迁移（内容块表回填等），幂等执行
	migrationSvc := database.NewMigrationService(sqlDB, dbType)
	if err := migrationSvc.RunMigrations(context.Background()); err != nil {
		return nil, cleanup, fmt.Errorf("历史数据迁移失败: %w", err)
	}

	// --- Phase 4.5: 初始化 ID 编码器 ---
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 5: 初始化业务逻辑层 ---
	txManager := ent_impl.NewEntTransactionManager(entClient)
	settingSvc := setting.NewSettingService(settingRepo, eventBus)
	if err := settingSvc.EnsureDefaults(context.Background()); err != nil {
		return nil, cleanup, fmt.Errorf("写入默认配置失败: %w", err)
	}
	if err := settingSvc.LoadAllSettings(context.Background()); err != nil {
		return nil, cleanup, fmt.Errorf("从数据库加载配置失败: %w", err)
	}

	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	store, err := newStorageDriver(settingSvc)
	if err != nil {
		return nil, cleanup, fmt.Errorf("初始化存储驱动失败: %w", err)
	}

	resolver := dedup.NewResolver(assetRepo, settingSvc, cacheSvc)

	probeSvc := media.NewFFProbeService(settingSvc)
	extractionSvc := media.NewExtractionService(metadataRepo, settingSvc, probeSvc)
	builtinGen := media.NewBuiltinImageGenerator(store)
	ffmpegGen := media.NewFfmpegGenerator(store, settingSvc, probeSvc)
	// 生成器按注册顺序尝试，内建图像生成器优先，ffmpeg 兜底处理视频与特殊格式
	thumbnailSvc := media.NewThumbnailService(settingSvc, builtinGen, ffmpegGen)
	previewSvc := media.NewPreviewService(settingSvc, builtinGen, ffmpegGen)

	spoolDir := os.TempDir()
	fetcher := ingest.NewHTTPFetcher(settingSvc, spoolDir)
	pipeline := ingest.NewPipeline(
		txManager,
		assetRepo,
		store,
		fetcher,
		extractionSvc,
		thumbnailSvc,
		previewSvc,
		settingSvc,
		eventBus,
		spoolDir,
	)

	// 内嵌子资产没有生成记录，谱系重建依赖元数据中的父引用派生来源
	lineageSvc := lineage_service.NewService(assetRepo, edgeRepo, generationRepo,
		lineage_service.NewEmbeddedMetadataDeriver(metadataRepo))
	providerRegistry := provider.NewRegistry()

	assetSvc := asset_service.NewService(
		txManager,
		assetRepo,
		generationRepo,
		metadataRepo,
		edgeRepo,
		resolver,
		lineageSvc,
		providerRegistry,
		eventBus,
		spoolDir,
	)

	// --- Phase 6: 初始化任务调度与事件监听 ---
	taskBroker := task.NewBroker(pipeline, lineageSvc, assetRepo, settingSvc, spoolDir)
	_ = listener.NewAssetPostProcessingListener(eventBus, taskBroker)

	// --- Phase 7: 初始化 HTTP 处理器与路由 ---
	assetHandler := asset_handler.NewHandler(assetSvc, pipeline)
	lineageHandler := lineage_handler.NewHandler(lineageSvc, assetRepo)
	appRouter := router.NewRouter(assetHandler, lineageHandler)

	// --- Phase 8: 配置 Gin 引擎 ---
	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
		log.Println("运行模式: Debug (Gin 将打印详细路由日志)")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("运行模式: Release (Gin 启动日志已禁用)")
	}

	engine := gin.Default()
	if err := engine.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}); err != nil {
		return nil, cleanup, fmt.Errorf("设置信任代理失败: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		taskBroker: taskBroker,
		sqlDB:      sqlDB,
		eventBus:   eventBus,
		settingSvc: settingSvc,
		cacheSvc:   cacheSvc,
		assetRepo:  assetRepo,
		assetSvc:   assetSvc,
		lineageSvc: lineageSvc,
		pipeline:   pipeline,
	}

	return app, cleanup, nil
}

// newStorageDriver 根据配置选择内容寻址存储驱动。
func newStorageDriver(settingSvc setting.SettingService) (storage.IStorageDriver, error) {
	driver := settingSvc.Get(constant.KeyStorageDriver.String())
	switch driver {
	case "s3":
		return storage.NewS3Driver(context.Background(), storage.S3Options{
			Bucket:    settingSvc.Get(constant.KeyStorageS3Bucket.String()),
			Region:    settingSvc.Get(constant.KeyStorageS3Region.String()),
			Endpoint:  settingSvc.Get(constant.KeyStorageS3Endpoint.String()),
			AccessKey: settingSvc.Get(constant.KeyStorageS3AccessKey.String()),
			SecretKey: settingSvc.Get(constant.KeyStorageS3SecretKey.String()),
		})
	case "", "local":
		basePath := settingSvc.Get(constant.KeyStorageBasePath.String())
		if basePath == "" {
			basePath = "data/storage"
		}
		log.Printf("【存储】使用本地内容寻址存储，根目录: %s", basePath)
		return storage.NewLocalDriver(basePath), nil
	default:
		return nil, fmt.Errorf("不支持的存储驱动: %s (支持: local, s3)", driver)
	}
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

// EventBus 返回事件总线，用于发布和订阅事件
func (a *App) EventBus() *event.EventBus {
	return a.eventBus
}

func (a *App) SettingService() setting.SettingService {
	return a.settingSvc
}

func (a *App) CacheService() utility.CacheService {
	return a.cacheSvc
}

func (a *App) AssetRepository() repository.AssetRepository {
	return a.assetRepo
}

// AssetService 返回资产服务实例
func (a *App) AssetService() *asset_service.Service {
	return a.assetSvc
}

// LineageService 返回谱系服务实例
func (a *App) LineageService() *lineage_service.Service {
	return a.lineageSvc
}

// IngestPipeline 返回摄取管道实例
func (a *App) IngestPipeline() *ingest.Pipeline {
	return a.pipeline
}

func (a *App) Run() error {
	a.taskBroker.RegisterCronJobs()
	a.taskBroker.Start()

	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8095"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.taskBroker != nil {
		a.taskBroker.Stop()
		log.Println("任务调度器已停止。")
	}
	if a.eventBus != nil {
		a.eventBus.Shutdown()
		log.Println("事件总线已停止。")
	}
}
