package image

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackkaliboi/DXN/internal/config"
)

func TestNewServiceRejectsIncompleteConfig(t *testing.T) {
	_, err := NewService(config.S3Options{})
	assert.Error(t, err)

	_, err = NewService(config.S3Options{Bucket: "b", Region: "r"})
	assert.Error(t, err)

	svc, err := NewService(config.S3Options{
		Bucket: "b", Region: "r", AccessKeyID: "ak", SecretAccessKey: "sk",
	})
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestObjectKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^uploads/\d+-[a-z0-9._-]+$`)

	tests := []struct {
		name     string
		filename string
	}{
		{"plain", "cover.png"},
		{"uppercase lowered", "Cover.PNG"},
		{"spaces replaced", "my cover image.jpg"},
		{"path stripped", "../../etc/passwd"},
		{"windows path stripped", `C:\pictures\cover.png`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := objectKey(tt.filename)
			assert.Regexp(t, keyPattern, key)
		})
	}
}

func TestObjectKeyUnique(t *testing.T) {
	assert.NotEqual(t, objectKey("a.png"), objectKey("b.png"))
}

func TestPublicURL(t *testing.T) {
	base := config.S3Options{Bucket: "imgs", Region: "eu-west-1", AccessKeyID: "ak", SecretAccessKey: "sk"}

	tests := []struct {
		name string
		mod  func(*config.S3Options)
		want string
	}{
		{
			"aws default",
			func(o *config.S3Options) {},
			"https://imgs.s3.eu-west-1.amazonaws.com/uploads/x",
		},
		{
			"custom public base",
			func(o *config.S3Options) { o.PublicBaseURL = "https://cdn.example.com/" },
			"https://cdn.example.com/uploads/x",
		},
		{
			"endpoint path style",
			func(o *config.S3Options) { o.Endpoint = "https://minio.local:9000"; o.PathStyleAccess = true },
			"https://minio.local:9000/imgs/uploads/x",
		},
		{
			"endpoint virtual host style",
			func(o *config.S3Options) { o.Endpoint = "https://imgs.r2.example.com" },
			"https://imgs.r2.example.com/uploads/x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mod(&opts)
			svc, err := NewService(opts)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, svc.publicURL("uploads/x"))
		})
	}
}
