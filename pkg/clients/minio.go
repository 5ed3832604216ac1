package clients

import (
	"context"

	"github.com/fsauctions/catalog-backend/internal/cfg"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinIOClient создает клиент MinIO по конфигурации хранилища контента.
func NewMinIOClient(cfg *cfg.MinIOCfg) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return client, nil
}

// EnsureBucket проверяет существование бакета с контентом.
// Бакет с каталогом наполняется извне, поэтому отсутствие — ошибка, а не повод создавать.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if !exists {
		return e.Wrap(bucket, e.ErrBucketNotFound)
	}

	return nil
}
