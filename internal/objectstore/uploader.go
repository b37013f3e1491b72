// Package objectstore uploads thumbnails to object storage and hands back
// their public URLs.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client the uploader consumes.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Uploader struct {
	client  S3API
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewUploader(client S3API, bucket, baseURL string) *Uploader {
	return &Uploader{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// UploadThumbnail stores the file publicly readable under
// thumbnail/<category>/<unix_ts>_<field>_<filename> and returns its URL.
func (u *Uploader) UploadThumbnail(ctx context.Context, category, field, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("thumbnail/%s/%d_%s_%s", category, u.now().Unix(), field, filename)

	if _, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
		ACL:    s3types.ObjectCannedACLPublicRead,
	}); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}
