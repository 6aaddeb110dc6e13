package export

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// uploadTimeout bounds a single object upload
const uploadTimeout = 30 * time.Second

// Uploader puts exported files into an S3 bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewUploader creates an uploader on an existing S3 client. Keys are
// prefix + the file's base name.
func NewUploader(client s3iface.S3API, bucket, prefix string, logger core.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// NewS3Uploader creates an uploader from settings. Static credentials are
// used when both keys are set; otherwise the SDK's default chain applies.
func NewS3Uploader(settings config.S3Settings, logger core.Logger) (*Uploader, error) {
	awsConfig := &aws.Config{
		Region: aws.String(settings.Region),
	}
	if settings.AccessKey != "" && settings.SecretKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(settings.AccessKey, settings.SecretKey, "")
	}
	if settings.Endpoint != "" {
		awsConfig.Endpoint = aws.String(settings.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("creating S3 session: %w", err)
	}
	return NewUploader(s3.New(sess), settings.Bucket, "renders/", logger), nil
}

// Upload puts the file at filePath into the bucket and returns its key
func (u *Uploader) Upload(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}

	key := path.Join(u.prefix, filepath.Base(filePath))
	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.bucket, size)
	}
	return key, nil
}

// UploadAll uploads every file and stops at the first failure
func (u *Uploader) UploadAll(ctx context.Context, files []string) ([]string, error) {
	keys := make([]string, 0, len(files))
	for _, f := range files {
		key, err := u.Upload(ctx, f)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
