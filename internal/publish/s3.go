package publish

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/kiln/internal/config"
	"github.com/vango-dev/kiln/internal/errors"
)

// PutObjectAPI is the subset of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads objects to an S3 bucket.
type S3Sink struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Sink creates a sink for bucket. prefix is prepended to every key.
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: prefix}
}

// NewS3SinkFromConfig builds an S3 client from the default AWS credential
// chain and the publish settings. A custom endpoint switches to path-style
// addressing for S3-compatible stores.
func NewS3SinkFromConfig(ctx context.Context, cfg config.PublishConfig) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("K162")
	}
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("K161").WithDetail("loading AWS configuration").Wrap(err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3Sink(client, cfg.Bucket, cfg.Prefix).WithCacheControl(cfg.CacheControl), nil
}

// WithCacheControl sets the Cache-Control header of uploaded objects.
func (s *S3Sink) WithCacheControl(v string) *S3Sink {
	s.cacheControl = v
	return s
}

// Put uploads body to prefix+key.
func (s *S3Sink) Put(ctx context.Context, key string, body []byte, contentType string) error {
	clean, ok := cleanKey(key)
	if !ok {
		return errors.New("K161").WithDetailf("invalid key %q", key)
	}
	if contentType == "" {
		contentType = ContentType(clean)
	}
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + clean),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}
	if s.cacheControl != "" {
		in.CacheControl = aws.String(s.cacheControl)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return errors.New("K161").WithDetailf("s3://%s/%s", s.bucket, s.prefix+clean).Wrap(err)
	}
	return nil
}
