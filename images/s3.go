package images

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores images as S3 objects. The returned path is the object key
// relative to the configured prefix, suitable for prepending a CDN or
// static URL on the way out.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *S3Store) Save(ctx context.Context, pathStem, mimeType string, data []byte) (string, error) {
	storedPath := pathStem + extensionForMIME(mimeType)
	key := path.Join(s.prefix, storedPath)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store image %s: %w", key, err)
	}

	return storedPath, nil
}
