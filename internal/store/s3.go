package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/securelogin/internal/logging"
)

// S3Options locates the credentials object. Endpoint is optional and is
// meant for S3-compatible servers such as MinIO.
type S3Options struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// objectAPI is the subset of *s3.Client the store needs.
type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// S3Store keeps the mapping as a single JSON object.
type S3Store struct {
	api    objectAPI
	bucket string
	key    string
	log    logging.Logger
}

func NewS3Store(api objectAPI, bucket, key string, log logging.Logger) *S3Store {
	if log == nil {
		log = logging.Nop()
	}
	return &S3Store{api: api, bucket: bucket, key: key, log: log}
}

// OpenS3Store builds an S3 client with static credentials and path-style
// addressing.
func OpenS3Store(ctx context.Context, opts S3Options, log logging.Logger) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = true
	})

	return NewS3Store(client, opts.Bucket, opts.Key, log), nil
}

func (s *S3Store) Load(ctx context.Context) (Credentials, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return Credentials{}, nil
		}
		return nil, fmt.Errorf("s3 get %s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %s/%s: %w", s.bucket, s.key, err)
	}

	creds, err := decode(data)
	if err != nil {
		s.log.Warn(ctx, "credential object is corrupt, starting empty", "bucket", s.bucket, "key", s.key, "error", err)
		return Credentials{}, nil
	}
	return creds, nil
}

func (s *S3Store) Save(ctx context.Context, creds Credentials) error {
	data, err := encode(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", s.bucket, s.key, err)
	}

	s.log.Debug(ctx, "credentials saved", "bucket", s.bucket, "key", s.key, "users", len(creds))
	return nil
}

func (s *S3Store) Close() error { return nil }
