package store

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3SourceConfig struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string // optional, forces path style addressing
}

type s3Source struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3Source(ctx context.Context, cfg S3SourceConfig) (Source, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &s3Source{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *s3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Join(s.prefix, name)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s: %w", name, err)
	}
	return out.Body, nil
}

func (s *s3Source) String() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}
