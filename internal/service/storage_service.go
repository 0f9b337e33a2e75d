package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"taskforge_backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider 对象存储抽象，实名材料等二进制内容经由它落盘
type StorageProvider interface {
	Upload(ctx context.Context, objectKey, contentType string, size int64, reader io.Reader) error
	Delete(ctx context.Context, objectKey string) error
}

type StorageService struct {
	provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case "minio":
		provider, err := newMinioProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &StorageService{provider: provider}, nil
	case "local", "":
		return &StorageService{provider: &localProvider{basePath: cfg.Storage.LocalPath}}, nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}

func (s *StorageService) Upload(ctx context.Context, objectKey, contentType string, size int64, reader io.Reader) error {
	return s.provider.Upload(ctx, objectKey, contentType, size, reader)
}

func (s *StorageService) Delete(ctx context.Context, objectKey string) error {
	return s.provider.Delete(ctx, objectKey)
}

type minioProvider struct {
	client *minio.Client
	bucket string
}

func newMinioProvider(cfg *config.Config) (*minioProvider, error) {
	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Storage.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Storage.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &minioProvider{client: client, bucket: cfg.Storage.MinioBucket}, nil
}

func (p *minioProvider) Upload(ctx context.Context, objectKey, contentType string, size int64, reader io.Reader) error {
	_, err := p.client.PutObject(ctx, p.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *minioProvider) Delete(ctx context.Context, objectKey string) error {
	return p.client.RemoveObject(ctx, p.bucket, objectKey, minio.RemoveObjectOptions{})
}

// localProvider 把对象写到本地目录，开发环境用
type localProvider struct {
	basePath string
}

func (p *localProvider) Upload(_ context.Context, objectKey, _ string, _ int64, reader io.Reader) error {
	path := filepath.Join(p.basePath, filepath.FromSlash(objectKey))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, reader)
	return err
}

func (p *localProvider) Delete(_ context.Context, objectKey string) error {
	return os.Remove(filepath.Join(p.basePath, filepath.FromSlash(objectKey)))
}
