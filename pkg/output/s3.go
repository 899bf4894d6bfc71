package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/config"
)

// UploadTimeout bounds a single frame upload
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when an S3 sink is created without a bucket
var ErrNoBucket = errors.New("output: no S3 bucket configured")

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// S3Sink uploads encoded frames to an S3 bucket
type S3Sink struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3Sink creates a session from cfg and returns a sink for its bucket.
// Static credentials are used when an access key is set and a custom
// endpoint switches to path-style addressing.
func NewS3Sink(cfg config.S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("output: creating S3 session: %w", err)
	}
	return NewS3SinkWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix)
}

// NewS3SinkWithClient creates a sink around an existing client
func NewS3SinkWithClient(client s3iface.S3API, bucket, prefix string) (*S3Sink, error) {
	if bucket == "" {
		return nil, ErrNoBucket
	}
	return &S3Sink{client: client, bucket: bucket, prefix: prefix}, nil
}

// Key returns the object key for name
func (s *S3Sink) Key(name string) string {
	return path.Join(s.prefix, path.Base(name))
}

// Save implements Sink
func (s *S3Sink) Save(ctx context.Context, name string, img image.Image) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("output: %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return fmt.Errorf("output: encoding %s: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := s.Key(name)
	size := int64(buf.Len())
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentTypes[format]),
	})
	if err != nil {
		return fmt.Errorf("output: uploading s3://%s/%s: %w", s.bucket, key, err)
	}

	logger.Noticef("Uploaded s3://%s/%s (%d bytes)", s.bucket, key, size)
	return nil
}
