// Package image uploads post cover images to S3-compatible object
// storage and hands back the public URL.
package image

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"github.com/hackkaliboi/DXN/internal/config"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

const (
	keyPrefix   = "uploads"
	maxFileSize = 10 << 20 // 10 MiB
)

type Service struct {
	client *s3.Client
	opts   config.S3Options
}

// NewService builds the S3 client from static credentials. Returns an
// error when the required options are missing so the caller can leave
// uploads unmounted instead of failing at request time.
func NewService(opts config.S3Options) (*Service, error) {
	if opts.Bucket == "" || opts.Region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	cfg := aws.Config{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyleAccess
	})
	return &Service{client: client, opts: opts}, nil
}

// Upload stores the payload under a timestamped key and returns its
// public URL.
func (s *Service) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := objectKey(filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *Service) publicURL(key string) string {
	if base := strings.TrimRight(s.opts.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}
	if s.opts.Endpoint != "" {
		endpoint := strings.TrimRight(s.opts.Endpoint, "/")
		if s.opts.PathStyleAccess {
			return endpoint + "/" + s.opts.Bucket + "/" + key
		}
		return endpoint + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
}

// objectKey prefixes the cleaned filename with a millisecond timestamp
// so repeated uploads of the same file never collide.
func objectKey(filename string) string {
	name := strings.ToLower(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" || name == "." {
		name = "file"
	}
	return fmt.Sprintf("%s/%d-%s", keyPrefix, time.Now().UnixMilli(), name)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	rg.POST("/admin/images", append(adminMW, h.upload)...)
}

// upload POST /admin/images  [admin]
func (h *Handler) upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if header.Size > maxFileSize {
		response.UnprocessableEntity(c, "file too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer file.Close()

	url, err := h.svc.Upload(c.Request.Context(), header.Filename, contentTypeOf(header), file)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"url": url})
}

func contentTypeOf(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}
