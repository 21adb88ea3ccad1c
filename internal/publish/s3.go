package publish

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client the publisher uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads a static export directory to S3.
//
// Example usage:
//
//	cfg, _ := awsconfig.LoadDefaultConfig(ctx)
//	p := publish.NewPublisher(s3.NewFromConfig(cfg), "my-bucket", "demo/")
//	n, err := p.PublishDir(ctx, "dist")
type Publisher struct {
	client s3API
	bucket string
	prefix string
}

// NewPublisher creates a publisher for the given bucket and key prefix.
func NewPublisher(client *s3.Client, bucket, prefix string) *Publisher {
	return newPublisher(client, bucket, prefix)
}

func newPublisher(client s3API, bucket, prefix string) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// PublishDir walks dir and uploads every regular file, returning the
// number of files uploaded. Keys are the file paths relative to dir, with
// the publisher's prefix prepended.
func (p *Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	uploaded := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if err := p.publishFile(ctx, path, filepath.ToSlash(rel)); err != nil {
			return fmt.Errorf("upload %s: %w", rel, err)
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}
	return uploaded, nil
}

func (p *Publisher) publishFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.prefix + key),
		Body:        f,
		ContentType: aws.String(contentTypeFor(key)),
	})
	return err
}

// contentTypeFor maps a key to its MIME type. The export only produces a
// handful of asset kinds.
func contentTypeFor(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
