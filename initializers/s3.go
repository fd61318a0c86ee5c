package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"hr-system-backend/config"
	filestorage "hr-system-backend/lib/file-storage"
	s3client "hr-system-backend/s3"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 не настроен, выгрузка отчетов в хранилище отключена")
		filestorage.NewInstance(nil)
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		filestorage.NewInstance(nil)
		return
	}

	ctx := context.Background()
	err = s3client.MakeBucket(ctx, minioClient)
	if err != nil {
		log.WithError(err).Error("Ошибка создания бакета для отчетов")
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
