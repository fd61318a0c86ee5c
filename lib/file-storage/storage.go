package filestorage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"
	"hr-system-backend/config"
)

// Provider складывает сформированные отчеты в S3.
// Когда хранилище не настроено, выгрузка молча пропускается,
// клиент в любом случае получает отчет в ответе.
type Provider interface {
	UploadReport(ctx context.Context, fileName string, body []byte, contentType string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadReport(ctx context.Context, fileName string, body []byte, contentType string) error {
	if i.s3client == nil {
		return nil
	}
	reader := bytes.NewReader(body)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileName, reader, int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	log.
		WithField("file_name", fileName).
		Info("отчет выгружен в хранилище")
	return nil
}
