/*
 * @Description: 数据库迁移服务（处理 SQL 迁移和数据回填）
 * @Author: 安知鱼
 * @Date: 2025-12-08
 */
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// MigrationService 数据库迁移服务
type MigrationService struct {
	db     *sql.DB
	dbType string
}

// NewMigrationService 创建迁移服务
func NewMigrationService(db *sql.DB, dbType string) *MigrationService {
	return &MigrationService{
		db:     db,
		dbType: dbType,
	}
}

// RunMigrations 执行所有迁移
func (m *MigrationService) RunMigrations(ctx context.Context) error {
	log.Println("📋 开始执行数据库迁移...")

	// 早期版本没有 content_blobs 表，为已落库的资产回填内容块行
	if err := m.backfillContentBlobs(ctx); err != nil {
		return fmt.Errorf("content_blobs 回填失败: %w", err)
	}

	log.Println("✅ 数据库迁移完成")
	return nil
}

// backfillContentBlobs 为携带内容哈希但缺少对应内容块行的资产补齐记录。
func (m *MigrationService) backfillContentBlobs(ctx context.Context) error {
	exists, err := m.tableExists(ctx, "content_blobs")
	if err != nil {
		return err
	}
	if !exists {
		log.Println("  ✓ content_blobs 表不存在，跳过回填")
		return nil
	}

	var insertSQL string
	switch m.dbType {
	case "mysql", "mariadb":
		insertSQL = `
			INSERT IGNORE INTO content_blobs (created_at, content_hash, size, mime_type)
			SELECT MIN(a.created_at), a.content_hash, MAX(a.size), COALESCE(MAX(a.mime_type), '')
			FROM assets a
			WHERE a.content_hash IS NOT NULL
			  AND a.content_hash NOT IN (SELECT content_hash FROM content_blobs)
			GROUP BY a.content_hash`
	default:
		// postgres 与 sqlite 都支持 ON CONFLICT DO NOTHING
		insertSQL = `
			INSERT INTO content_blobs (created_at, content_hash, size, mime_type)
			SELECT MIN(a.created_at), a.content_hash, MAX(a.size), COALESCE(MAX(a.mime_type), '')
			FROM assets a
			WHERE a.content_hash IS NOT NULL
			  AND a.content_hash NOT IN (SELECT content_hash FROM content_blobs)
			GROUP BY a.content_hash
			ON CONFLICT (content_hash) DO NOTHING`
	}

	result, err := m.db.ExecContext(ctx, insertSQL)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Printf("  ✓ 已回填 %d 条 content_blobs 记录", n)
	} else {
		log.Println("  ✓ content_blobs 无需回填")
	}
	return nil
}

// tableExists 检查表是否存在
func (m *MigrationService) tableExists(ctx context.Context, tableName string) (bool, error) {
	var query string
	switch m.dbType {
	case "mysql", "mariadb":
		query = `SELECT COUNT(*) FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_name = ?`
	case "postgres":
		query = `SELECT COUNT(*) FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1`
	default:
		query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	}

	var count int
	if err := m.db.QueryRowContext(ctx, query, tableName).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
