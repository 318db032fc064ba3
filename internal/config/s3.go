package config

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/editorui/internal/errors"
)

// ObjectGetter is the part of the S3 client LoadS3 needs. *s3.Client
// satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewS3Client returns an anonymous client for public buckets in region.
func NewS3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.AnonymousCredentials{},
	})
}

// IsS3URL reports whether location is an s3:// URL.
func IsS3URL(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// ParseS3URL splits s3://bucket/key.
func ParseS3URL(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, "s3://")
	if !ok {
		return "", "", errors.New("E123").WithDetail(location + " is not an s3:// URL")
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", errors.New("E123").
			WithDetail(location + " needs a bucket and a key").
			WithExample("s3://my-bucket/editor/editorui.yaml")
	}
	return bucket, key, nil
}

// LoadS3 fetches a configuration object. The key's extension selects
// the format.
func LoadS3(ctx context.Context, client ObjectGetter, bucket, key string) (*Config, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.New("E123").
			WithDetail("s3://" + bucket + "/" + key).
			Wrap(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.New("E123").Wrap(err)
	}
	return Parse(data, FormatOf(key))
}
