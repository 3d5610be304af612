// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package body

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/apigwctl/internal/log"
)

// S3Getter is the slice of *s3.Client used to fetch s3:// sources.
type S3Getter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Reader resolves body source specs into bytes. S3 is constructed lazily, only
// when an s3:// source is read.
type Reader struct {
	Stdin io.Reader
	S3    func(context.Context) (S3Getter, error)
}

// Read opens the source named by spec, reads it fully and closes it. spec is
// a local path, "-" for stdin, or s3://bucket/key.
func (r *Reader) Read(ctx context.Context, spec string) ([]byte, error) {
	switch {
	case spec == "":
		return nil, fmt.Errorf("empty body source")
	case spec == "-":
		if r.Stdin == nil {
			return nil, fmt.Errorf("stdin is not available")
		}
		b, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}
		log.Debugf("body read: source=stdin bytes=%d", len(b))
		return b, nil
	case strings.HasPrefix(spec, "s3://"):
		return r.readS3(ctx, spec)
	}

	f, err := os.Open(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to open body file: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read body file %s: %w", spec, err)
	}
	log.Debugf("body read: source=%s bytes=%d", spec, len(b))
	return b, nil
}

func (r *Reader) readS3(ctx context.Context, spec string) ([]byte, error) {
	bucket, key, err := ParseS3URI(spec)
	if err != nil {
		return nil, err
	}
	if r.S3 == nil {
		return nil, fmt.Errorf("no S3 client available for %s", spec)
	}

	svc, err := r.S3(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	b, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}
	log.Debugf("body read: source=%s bytes=%d", spec, len(b))
	return b, nil
}

// ParseS3URI splits s3://bucket/key. Both parts must be present.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri must be s3://bucket/key: %s", uri)
	}
	return bucket, key, nil
}

// WriteFile creates path and writes data to it, closing it before returning.
func WriteFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", path, err)
	}
	log.Debugf("body written: path=%s bytes=%d", path, len(data))
	return nil
}
