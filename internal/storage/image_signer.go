package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"amozeshgah/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
)

// ImageSigner turns a stored course image reference into a URL a browser can load.
type ImageSigner interface {
	SignImageURL(ctx context.Context, ref string) (string, error)
}

// PassthroughSigner returns references unchanged. It is used when no bucket is configured.
type PassthroughSigner struct{}

func (PassthroughSigner) SignImageURL(_ context.Context, ref string) (string, error) {
	return ref, nil
}

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*presignedRequest, error)
}

// presignedRequest mirrors the field of v4.PresignedHTTPRequest we read.
type presignedRequest struct {
	URL string
}

type s3Presigner struct {
	client *s3.PresignClient
}

func (p s3Presigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*presignedRequest, error) {
	req, err := p.client.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &presignedRequest{URL: req.URL}, nil
}

// S3ImageSigner presigns GET requests for course images kept in a bucket.
type S3ImageSigner struct {
	presign presigner
	bucket  string
	ttl     time.Duration
}

// NewS3ImageSigner builds a signer for an S3 compatible endpoint.
func NewS3ImageSigner(ctx context.Context, cfg *config.Config) (*S3ImageSigner, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3URL != "" {
			o.BaseEndpoint = aws.String(cfg.S3URL)
			o.UsePathStyle = true
		}
	})
	return &S3ImageSigner{
		presign: s3Presigner{client: s3.NewPresignClient(client)},
		bucket:  cfg.S3Bucket,
		ttl:     cfg.S3PresignTTL,
	}, nil
}

// SignImageURL presigns ref when it is a bucket key. Absolute URLs and empty
// references are returned as they are.
func (s *S3ImageSigner) SignImageURL(ctx context.Context, ref string) (string, error) {
	if ref == "" || isAbsoluteURL(ref) {
		return ref, nil
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(ref, "/")),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL for %s: %w", ref, err)
	}
	return req.URL, nil
}

func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// removeDisableGzip works around S3 signature errors with some S3 compatible services.
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
