package initializers

import (
	"context"

	"ocavior-site/config"
	filestorage "ocavior-site/lib/file-storage"
	s3client "ocavior-site/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 enables resume archiving. S3 problems only disable the archive.
func InitS3(ctx context.Context) {
	if !*config.Conf.S3.Enabled {
		log.Info("S3 disabled, resumes are not archived")
		return
	}
	minioClient, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("error initializing S3 client")
		return
	}
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		log.WithError(err).Error("S3 connection failed: ListBuckets returned an error")
		return
	}
	if err = filestorage.NewHandler(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("error initializing resume archive")
		return
	}
	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
