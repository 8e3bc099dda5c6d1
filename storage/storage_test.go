package storage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr bool
	}{
		{"jpeg ok", fileHeader("photo.jpg", "image/jpeg", 1024), false},
		{"png ok", fileHeader("logo.png", "image/png", 1024), false},
		{"webp ok", fileHeader("banner.webp", "image/webp", 1024), false},
		{"gif ok", fileHeader("anim.gif", "image/gif", 1024), false},
		{"uppercase extension ok", fileHeader("photo.JPG", "image/jpeg", 1024), false},
		{"pdf rejected", fileHeader("doc.pdf", "application/pdf", 1024), true},
		{"svg rejected", fileHeader("icon.svg", "image/svg+xml", 1024), true},
		{"mismatched type rejected", fileHeader("photo.jpg", "application/octet-stream", 1024), true},
		{"oversize rejected", fileHeader("big.png", "image/png", MaxImageSize + 1), true},
		{"at limit ok", fileHeader("full.png", "image/png", MaxImageSize), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.file)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
