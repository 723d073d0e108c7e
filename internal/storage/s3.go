// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage archives generated bundles to S3-compatible object
// storage. It wraps the AWS SDK v2 and is configured for path-style access
// so MinIO, CEPH and Hetzner endpoints work unchanged.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"brandcraft/internal/models"
	"brandcraft/internal/slug"
)

const (
	defaultRegion = "us-east-1"
	defaultPrefix = "bundles"

	// maxSlugLen bounds the brand-name part of an object key.
	maxSlugLen = 48
)

// Config holds the object storage settings.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
}

// Client uploads archived generation records to one bucket.
type Client struct {
	s3     *s3.Client
	bucket string
	prefix string
}

// New creates an S3 storage client with path-style addressing. Returns
// (nil, nil) if the endpoint, bucket or credentials are empty, allowing the
// app to start without storage.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, nil
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix == "" {
		prefix = defaultPrefix
	}

	s3Client := s3.New(s3.Options{
		Region:                     cfg.Region,
		BaseEndpoint:               aws.String(strings.TrimRight(cfg.Endpoint, "/")),
		Credentials:                credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})

	return &Client{s3: s3Client, bucket: cfg.Bucket, prefix: prefix}, nil
}

// Key returns the object key for a record:
// <prefix>/<yyyy>/<mm>/<id>-<slug of first brand name>.json
func (c *Client) Key(rec models.GenerationRecord) string {
	name := "brand"
	if len(rec.Bundle.BrandNames) > 0 {
		if s := slug.GenerateMax(rec.Bundle.BrandNames[0], maxSlugLen); s != "" {
			name = s
		}
	}
	created := rec.CreatedAt.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%d-%s.json", c.prefix, created.Year(), int(created.Month()), rec.ID, name)
}

// Archive uploads rec to the bucket as an indented JSON document.
func (c *Client) Archive(ctx context.Context, rec models.GenerationRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record %d: %w", rec.ID, err)
	}

	key := c.Key(rec)
	_, err = c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// Bucket returns the name of the archive bucket.
func (c *Client) Bucket() string {
	return c.bucket
}
