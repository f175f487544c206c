package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appconfig "github.com/brotherhood/barbershop_backend/internal/config"
)

// S3GalleryService lists gallery images stored under a prefix of an S3 bucket.
type S3GalleryService struct {
	BucketName string
	Prefix     string
	Client     s3.ListObjectsV2APIClient
}

// NewS3GalleryService initializes the S3 client from the default AWS
// credential chain. A prefix without a trailing "/" is treated as a folder.
func NewS3GalleryService(ctx context.Context, bucket, prefix, region string) (*S3GalleryService, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is not set")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3GalleryService{
		BucketName: bucket,
		Prefix:     appconfig.NormalizeS3Prefix(prefix),
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// ListFileNames returns the base names of the objects directly under Prefix.
// Keys in deeper "folders" are skipped, like subdirectories on disk.
func (s *S3GalleryService) ListFileNames(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.BucketName),
	}
	if s.Prefix != "" {
		input.Prefix = aws.String(s.Prefix)
	}

	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in s3://%s/%s: %w", s.BucketName, s.Prefix, err)
		}
		for _, obj := range page.Contents {
			rest := strings.TrimPrefix(aws.ToString(obj.Key), s.Prefix)
			if rest == "" || strings.Contains(rest, "/") {
				continue
			}
			names = append(names, path.Base(rest))
		}
	}
	return names, nil
}
