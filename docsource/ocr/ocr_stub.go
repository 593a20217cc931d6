//go:build !ocr

// Package ocr turns scanned roster page images into the plain text the
// roster extractor scans for lecturer names.
//
// This is the stub compiled when the "ocr" build tag is not set; every
// operation returns ErrNotEnabled. Rebuild with the tag to enable OCR:
//
//	go build -tags ocr
//
// This requires Tesseract with the Arabic language data installed.
package ocr

import (
	"errors"

	"github.com/adawood/tawafur/docsource"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = false

// ErrNotEnabled is returned when OCR is used without the "ocr" build
// tag.
var ErrNotEnabled = errors.New("ocr support not enabled; rebuild with -tags ocr")

// Client is the stub OCR client.
type Client struct{}

// New returns ErrNotEnabled in the stub build.
func New(languages string) (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op in the stub build.
func (c *Client) Close() error { return nil }

// Recognize returns ErrNotEnabled in the stub build.
func (c *Client) Recognize(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// Page returns ErrNotEnabled in the stub build.
func (c *Client) Page(imageData []byte) (docsource.Page, error) {
	return nil, ErrNotEnabled
}
