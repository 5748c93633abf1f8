package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"influence_survey/internal/config"
	"influence_survey/internal/model"
	"influence_survey/internal/util"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// SourceProvider 题库文件来源
type SourceProvider interface {
	Stat(ctx context.Context) (model.SourceFingerprint, error)
	Read(ctx context.Context) ([]byte, error)
	// LocalPath 本地文件路径，远程来源返回空串
	LocalPath() string
}

// LocalSourceProvider 本地文件
type LocalSourceProvider struct {
	Path string
}

func (p *LocalSourceProvider) Stat(ctx context.Context) (model.SourceFingerprint, error) {
	info, err := os.Stat(p.Path)
	if err != nil {
		return model.SourceFingerprint{}, err
	}
	if info.IsDir() {
		return model.SourceFingerprint{}, fmt.Errorf("%s is a directory", p.Path)
	}
	return model.SourceFingerprint{
		Name:    p.Path,
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}, nil
}

func (p *LocalSourceProvider) Read(ctx context.Context) ([]byte, error) {
	return os.ReadFile(p.Path)
}

func (p *LocalSourceProvider) LocalPath() string {
	if abs, err := filepath.Abs(p.Path); err == nil {
		return abs
	}
	return p.Path
}

// MinioSourceProvider MinIO 对象
type MinioSourceProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
	Key    string
}

func NewMinioSourceProvider(cfg *config.StorageConfig, key string) (*MinioSourceProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioSourceProvider{Config: cfg, Client: client, Key: key}, nil
}

func (p *MinioSourceProvider) Stat(ctx context.Context) (model.SourceFingerprint, error) {
	info, err := p.Client.StatObject(ctx, p.Config.MinioBucket, p.Key, minio.StatObjectOptions{})
	if err != nil {
		return model.SourceFingerprint{}, err
	}
	return model.SourceFingerprint{
		Name:    p.Config.MinioBucket + "/" + p.Key,
		ModTime: info.LastModified,
		Size:    info.Size,
		ETag:    info.ETag,
	}, nil
}

func (p *MinioSourceProvider) Read(ctx context.Context) ([]byte, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, p.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (p *MinioSourceProvider) LocalPath() string { return "" }

// OSSSourceProvider 阿里云OSS对象
type OSSSourceProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
	Key    string
}

func NewOSSSourceProvider(cfg *config.StorageConfig, key string) (*OSSSourceProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSSourceProvider{Config: cfg, Client: client, Key: key}, nil
}

func (p *OSSSourceProvider) Stat(ctx context.Context) (model.SourceFingerprint, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return model.SourceFingerprint{}, err
	}
	h, err := bucket.GetObjectDetailedMeta(p.Key)
	if err != nil {
		return model.SourceFingerprint{}, err
	}
	fp := model.SourceFingerprint{
		Name: p.Config.OSSBucket + "/" + p.Key,
		ETag: h.Get("ETag"),
	}
	if size, err := strconv.ParseInt(h.Get("Content-Length"), 10, 64); err == nil {
		fp.Size = size
	}
	if t, err := http.ParseTime(h.Get("Last-Modified")); err == nil {
		fp.ModTime = t
	}
	return fp, nil
}

func (p *OSSSourceProvider) Read(ctx context.Context) ([]byte, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return nil, err
	}
	body, err := bucket.GetObject(p.Key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (p *OSSSourceProvider) LocalPath() string { return "" }

// NewSourceProvider 按 storage.type 选择题库来源
func NewSourceProvider(cfg *config.Config) (SourceProvider, error) {
	switch cfg.Storage.Type {
	case util.StorageMinio:
		return NewMinioSourceProvider(&cfg.Storage, cfg.Survey.Source)
	case util.StorageOSS:
		return NewOSSSourceProvider(&cfg.Storage, cfg.Survey.Source)
	default:
		return &LocalSourceProvider{Path: cfg.Survey.Source}, nil
	}
}
