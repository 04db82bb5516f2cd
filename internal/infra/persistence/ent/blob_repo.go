package ent

import (
	"context"

	"github.com/anzhiyu-c/mediaflow/pkg/constant"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/repository"

	"github.com/anzhiyu-c/mediaflow/ent"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
)

// entContentBlobRepository 是 ContentBlobRepository 接口的 Ent 实现。
type entContentBlobRepository struct {
	client *ent.Client
}

// NewEntContentBlobRepository 是 entContentBlobRepository 的构造函数。
func NewEntContentBlobRepository(client *ent.Client) repository.ContentBlobRepository {
	return &entContentBlobRepository{client: client}
}

// Ensure 以 insert-if-absent 语义确保哈希对应的行存在。
// 并发首见时，落败的一方会命中唯一约束冲突，随后回查已存在的行。
func (r *entContentBlobRepository) Ensure(ctx context.Context, hash string, size int64, mimeType string) (*model.ContentBlob, error) {
	created, err := r.client.ContentBlob.
		Create().
		SetContentHash(hash).
		SetSize(size).
		SetMimeType(mimeType).
		Save(ctx)
	if err == nil {
		return toDomainContentBlob(created), nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}
	return r.FindByHash(ctx, hash)
}

// FindByHash 按内容哈希查找。
func (r *entContentBlobRepository) FindByHash(ctx context.Context, hash string) (*model.ContentBlob, error) {
	entBlob, err := r.client.ContentBlob.Query().
		Where(contentblob.ContentHashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toDomainContentBlob(entBlob), nil
}

// toDomainContentBlob 将 ent 生成的内容块对象转换为领域模型对象。
func toDomainContentBlob(b *ent.ContentBlob) *model.ContentBlob {
	if b == nil {
		return nil
	}
	return &model.ContentBlob{
		ID:          b.ID,
		CreatedAt:   b.CreatedAt,
		ContentHash: b.ContentHash,
		Size:        b.Size,
		MimeType:    b.MimeType,
	}
}
