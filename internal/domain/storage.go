package domain

import (
	"context"
	"errors"
	"io"
)

// Storage areas for uploaded images. Each maps to a distinct key prefix in
// the object store.
const (
	AreaEventImgs  = "event-imgs"
	AreaPeopleImgs = "people-imgs"
)

// Sentinel errors for image uploads.
var (
	ErrUnknownArea        = errors.New("unknown storage area")
	ErrUnsupportedContent = errors.New("only PNG and JPEG images are accepted")
)

// ImageStore uploads event cover and profile images and returns the
// resolvable public URL of the stored object.
type ImageStore interface {
	Upload(ctx context.Context, area, filename, contentType string, body io.Reader) (url string, err error)
}
