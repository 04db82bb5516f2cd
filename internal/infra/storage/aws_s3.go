package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options 包含创建 S3 驱动所需的连接信息。
// Endpoint 为空时使用 AWS 官方端点；非空时走 path-style（兼容 MinIO 等）。
type S3Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Driver 实现了 IStorageDriver 接口，用于处理与 S3 兼容对象存储的所有交互。
type S3Driver struct {
	client *s3.Client
	bucket string
}

// NewS3Driver 是 S3Driver 的构造函数。
func NewS3Driver(ctx context.Context, opts S3Options) (IStorageDriver, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("S3 驱动缺少存储桶名称")
	}
	if opts.AccessKey == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("S3 驱动缺少访问凭证")
	}

	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建 S3 配置失败: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Printf("[S3Driver] 客户端已创建 - 区域: %s, 桶: %s", region, opts.Bucket)
	return &S3Driver{client: client, bucket: opts.Bucket}, nil
}

// Store 将内容写入由哈希推导出的键。对象已存在时跳过上传。
func (d *S3Driver) Store(ctx context.Context, ownerID uint, hash string, r io.Reader, ext string) (string, error) {
	key := ContentKey(ownerID, hash, ext)

	exists, err := d.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if exists {
		log.Printf("[S3Driver] 内容键已存在，跳过上传: %s", key)
		return key, nil
	}

	if err := d.Put(ctx, key, r); err != nil {
		return "", err
	}
	return key, nil
}

// Put 将内容写入指定键，允许覆盖。
func (d *S3Driver) Put(ctx context.Context, key string, r io.Reader) error {
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("上传对象 '%s' 失败: %w", key, err)
	}
	return nil
}

// Get 返回指定键的可读流。
func (d *S3Driver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("获取对象 '%s' 失败: %w", key, err)
	}
	return output.Body, nil
}

// Exists 通过 HeadObject 检查指定键是否存在。
func (d *S3Driver) Exists(ctx context.Context, key string) (bool, error) {
	_, err := d.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		// 部分 S3 兼容实现对 Head 返回通用 404
		if strings.Contains(err.Error(), "StatusCode: 404") {
			return false, nil
		}
		return false, fmt.Errorf("检查对象 '%s' 失败: %w", key, err)
	}
	return true, nil
}

// Delete 删除一个或多个键。S3 对不存在的键删除也返回成功。
func (d *S3Driver) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(d.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return fmt.Errorf("删除对象 '%s' 失败: %w", key, err)
		}
	}
	return nil
}
