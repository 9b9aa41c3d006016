package facerec

import (
	"io"
	"path/filepath"
	"strings"
)

// ImageFile is an image upload. Size must reflect the full content length so
// validation can reject oversized files before any bytes hit the network.
type ImageFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// allowedImageExts are the upload types the backend's recognizer accepts
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".webp": true,
}

// AllowedImageTypes names the accepted formats; validation messages quote it
const AllowedImageTypes = "JPEG, PNG, BMP, GIF, WebP"

func lowerExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func (c *Client) validateImage(img ImageFile) *APIError {
	if img.Reader == nil || img.Name == "" {
		return validationError("an image file is required")
	}
	ext := strings.ToLower(filepath.Ext(img.Name))
	if !allowedImageExts[ext] {
		return validationError("unsupported file type %q: allowed types are %s", ext, AllowedImageTypes)
	}
	max := c.MaxImageBytes
	if max <= 0 {
		max = DefaultMaxImageBytes
	}
	if img.Size > max {
		return validationError("image exceeds the maximum size of %d bytes", max)
	}
	return nil
}
