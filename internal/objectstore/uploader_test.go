package objectstore

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureS3 struct {
	input *s3.PutObjectInput
	err   error
}

func (c *captureS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.input = params
	return &s3.PutObjectOutput{}, c.err
}

func TestUploadThumbnail(t *testing.T) {
	client := &captureS3{}
	uploader := NewUploader(client, "inkwell", "https://static.inkwell.dev")
	uploader.now = func() time.Time { return time.Unix(1700000000, 0) }

	url, err := uploader.UploadThumbnail(context.Background(), "team", "image", "logo.png", []byte("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://static.inkwell.dev/thumbnail/team/1700000000_image_logo.png", url)

	require.NotNil(t, client.input)
	assert.Equal(t, "inkwell", *client.input.Bucket)
	assert.Equal(t, "thumbnail/team/1700000000_image_logo.png", *client.input.Key)
	assert.Equal(t, s3types.ObjectCannedACLPublicRead, client.input.ACL)

	body, err := io.ReadAll(client.input.Body)

	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
}

func TestUploadThumbnailError(t *testing.T) {
	client := &captureS3{err: assert.AnError}
	uploader := NewUploader(client, "inkwell", "https://static.inkwell.dev")

	_, err := uploader.UploadThumbnail(context.Background(), "user", "image", "a.png", nil)

	assert.Error(t, err)
}
