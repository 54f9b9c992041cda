package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/dentalcare-app/clinic-api/internal/config"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
)

const (
	maxWidth    = 1600
	webpQuality = 85
)

// Uploader stores examination images in S3-compatible storage,
// re-encoded as webp. A nil *Uploader means no storage is configured;
// UploadImage then fails with storage_not_configured.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg config.S3Config) *Uploader {
	if cfg.Bucket == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	baseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}
}

// UploadImage normalizes the image (decode, clamp width, webp encode)
// and stores it under results/<uuid>.webp, returning the public URL.
func (u *Uploader) UploadImage(ctx context.Context, r io.Reader) (string, error) {
	if u == nil {
		return "", httperr.ErrBusinessf(httperr.CodeStorageNotConfigured, "file storage is not configured")
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusinessf("unsupported_image", "the file is not a supported image")
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, clampWidth(src), &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("results/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentType:   aws.String("image/webp"),
		ContentLength: aws.Int64(int64(buf.Len())),
	})
	if err != nil {
		return "", err
	}

	return u.baseURL + "/" + key, nil
}

func clampWidth(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
