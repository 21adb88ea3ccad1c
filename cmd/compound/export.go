package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-go/compound/internal/config"
	"github.com/vango-go/compound/internal/publish"
	"github.com/vango-go/compound/pkg/render"
)

func exportCmd() *cobra.Command {
	var (
		out    string
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the demo page to static HTML",
		Long: `Render the demo page into the output directory.

With --bucket the exported files are also uploaded to S3. Credentials
are read from the standard AWS environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if out != "" {
				cfg.Export.Output = out
			}
			if bucket != "" {
				cfg.Export.Bucket = bucket
			}
			if prefix != "" {
				cfg.Export.Prefix = prefix
			}
			return runExport(cmd.Context(), cfg, region)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default: dist)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload the export to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "S3 region")
	return cmd
}

func runExport(ctx context.Context, cfg *config.Config, region string) error {
	if err := os.MkdirAll(cfg.Export.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: true})
	html, err := renderer.RenderToString(demoPage())
	if err != nil {
		return fmt.Errorf("render demo page: %w", err)
	}

	index := filepath.Join(cfg.Export.Output, "index.html")
	if err := os.WriteFile(index, []byte("<!DOCTYPE html>\n"+html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", index, err)
	}
	success("exported %s", index)

	if cfg.Export.Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(envCredentials()),
	})
	publisher := publish.NewPublisher(client, cfg.Export.Bucket, cfg.Export.Prefix)

	n, err := publisher.PublishDir(ctx, cfg.Export.Output)
	if err != nil {
		return fmt.Errorf("publish to s3: %w", err)
	}
	success("uploaded %d file(s) to s3://%s/%s", n, cfg.Export.Bucket, cfg.Export.Prefix)
	return nil
}

// envCredentials reads static credentials from the standard AWS
// environment variables.
func envCredentials() aws.CredentialsProviderFunc {
	return func(ctx context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, fmt.Errorf("AWS credentials not set in environment")
		}
		return creds, nil
	}
}
