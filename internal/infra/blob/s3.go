package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tours360/tourgraph/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

// S3Deps is the blob store holding panorama and gallery images. Objects are
// addressed by public URL everywhere else in the system.
type S3Deps struct {
	Client    *s3.Client
	Uploader  *manager.Uploader
	Bucket    string
	PublicURL string
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	otelaws.AppendMiddlewares(&awsCfg.APIOptions)

	endpoint := cfg.S3.InternalEndpoint
	if endpoint == "" {
		endpoint = cfg.S3.Endpoint
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	publicURL := cfg.S3.PublicURL
	if publicURL == "" && cfg.S3.Endpoint != "" {
		publicURL = strings.TrimRight(cfg.S3.Endpoint, "/") + "/" + cfg.S3.Bucket
	}

	return &S3Deps{
		Client:    client,
		Uploader:  manager.NewUploader(client),
		Bucket:    cfg.S3.Bucket,
		PublicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// URLFor returns the public URL of key.
func (u *S3Deps) URLFor(key string) string {
	return u.PublicURL + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL reports the object key when url points into this bucket.
func (u *S3Deps) KeyFromURL(url string) (string, bool) {
	if u.PublicURL == "" {
		return "", false
	}
	prefix := u.PublicURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

// Put uploads body under key and returns its public URL.
func (u *S3Deps) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := u.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.Bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return u.URLFor(key), nil
}

// DeleteByURL removes the object behind url. URLs outside the bucket are ignored.
func (u *S3Deps) DeleteByURL(ctx context.Context, url string) error {
	key, ok := u.KeyFromURL(url)
	if !ok {
		return nil
	}
	_, err := u.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
