package storage

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
)

// S3API is the part of *s3.Client the gateway needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3Options configures an S3-compatible bucket (AWS, DigitalOcean Spaces, MinIO).
type S3Options struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	PublicRead   bool
	UsePathStyle bool
}

// S3Gateway stores objects in an S3-compatible bucket.
type S3Gateway struct {
	client     S3API
	bucket     string
	publicRead bool
}

// NewS3Gateway builds an S3 client with static credentials.
func NewS3Gateway(ctx context.Context, opts S3Options) (*S3Gateway, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, errors.Wrap(err, "load s3 config")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		// Spaces and MinIO reject the streaming checksums newer SDKs send by default.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})
	return NewS3GatewayWithClient(client, opts.Bucket, opts.PublicRead), nil
}

// NewS3GatewayWithClient wraps an existing client.
func NewS3GatewayWithClient(client S3API, bucket string, publicRead bool) *S3Gateway {
	return &S3Gateway{client: client, bucket: bucket, publicRead: publicRead}
}

func (g *S3Gateway) acl() types.ObjectCannedACL {
	if g.publicRead {
		return types.ObjectCannedACLPublicRead
	}
	return types.ObjectCannedACLPrivate
}

// Upload puts the file under {category}/{ownerID}/{name}.
func (g *S3Gateway) Upload(ctx context.Context, file File, ownerID uint, category string) (string, error) {
	key := Key(category, ownerID, SanitizeName(file.Name))
	input := &s3.PutObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
		Body:   file.Body,
		ACL:    g.acl(),
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}
	if _, err := g.client.PutObject(ctx, input); err != nil {
		return "", errors.Wrapf(err, "put object %s", key)
	}
	return key, nil
}

// Delete removes the object under key.
func (g *S3Gateway) Delete(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	return errors.Wrapf(err, "delete object %s", key)
}

// Rename copies the object into the new owner's folder and deletes the
// original. S3 has no server-side move.
func (g *S3Gateway) Rename(ctx context.Context, category string, oldOwnerID, newOwnerID uint, filename string) (string, error) {
	oldKey := Key(category, oldOwnerID, filename)
	newKey := Key(category, newOwnerID, filename)

	_, err := g.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(g.bucket),
		CopySource: aws.String(copySource(g.bucket, oldKey)),
		Key:        aws.String(newKey),
		ACL:        g.acl(),
	})
	if err != nil {
		return "", errors.Wrapf(err, "copy object %s to %s", oldKey, newKey)
	}
	if err := g.Delete(ctx, oldKey); err != nil {
		// The original is still in place, so the copy would be orphaned.
		if cleanupErr := g.Delete(context.WithoutCancel(ctx), newKey); cleanupErr != nil {
			log.Printf("Failed to remove copied object %s: %v", newKey, cleanupErr)
		}
		return "", err
	}
	return newKey, nil
}

// copySource is the URL-encoded "bucket/key" CopyObject expects.
func copySource(bucket, key string) string {
	segments := strings.Split(bucket+"/"+key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
