package filestorage

import (
	"bytes"
	"context"
	"fmt"
	careersapimodels "ocavior-site/models/api/careers"
	s3client "ocavior-site/s3"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// ArchiveResume stores a copy of the uploaded resume and returns its object name.
	ArchiveResume(ctx context.Context, resume careersapimodels.ResumeFile) (objectName string, err error)
}

var Instance Provider

func NewHandler(ctx context.Context, s3 *minio.Client, bucketName string) error {
	if s3 == nil {
		return errors.New("s3 client is not initialized")
	}
	if err := s3client.MakeBucket(ctx, s3, bucketName); err != nil {
		return errors.Wrapf(err, "error creating bucket %s", bucketName)
	}
	Instance = &impl{
		s3client:   s3,
		bucketName: bucketName,
		now:        time.Now,
	}
	return nil
}

type impl struct {
	s3client   *minio.Client
	bucketName string
	now        func() time.Time
}

func (i impl) ArchiveResume(ctx context.Context, resume careersapimodels.ResumeFile) (string, error) {
	objectName := resumeObjectName(i.now(), uuid.NewString(), resume.Ext())
	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(resume.Body), int64(len(resume.Body)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: map[string]string{"original-name": resume.FileName},
		})
	if err != nil {
		return "", errors.Wrap(err, "error uploading resume")
	}
	log.
		WithField("bucket", i.bucketName).
		WithField("object", objectName).
		Info("resume archived")
	return objectName, nil
}

func resumeObjectName(now time.Time, id, ext string) string {
	return fmt.Sprintf("resumes/%04d/%02d/%s%s", now.Year(), int(now.Month()), id, ext)
}
