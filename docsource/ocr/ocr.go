//go:build ocr

// Package ocr turns scanned roster page images into the plain text the
// roster extractor scans for lecturer names.
//
// It wraps the Tesseract engine via gosseract and requires Tesseract
// (with the Arabic language data) to be installed. Build with the
// "ocr" tag to enable it:
//
//	go build -tags ocr
//
// Without the tag, the stub implementation returns ErrNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/adawood/tawafur/docsource"
)

// Enabled reports whether OCR support was compiled in.
const Enabled = true

// Client wraps a Tesseract session. Close it when done.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client recognizing the given languages
// ("ara+eng" covers the roster documents; empty defaults to "eng").
func New(languages string) (*Client, error) {
	c := gosseract.NewClient()
	if languages != "" {
		if err := c.SetLanguage(strings.Split(languages, "+")...); err != nil {
			c.Close()
			return nil, fmt.Errorf("setting OCR languages: %w", err)
		}
	}
	return &Client{client: c}, nil
}

// Close releases the Tesseract session.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize runs OCR over one page image (PNG, JPEG, TIFF, or BMP)
// and returns the recognized text.
func (c *Client) Recognize(imageData []byte) (string, error) {
	png, err := ToPNG(imageData)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("setting OCR image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Page recognizes one scanned page image and wraps it as a
// docsource.Page. Scanned pages expose text only; grid recovery from
// page images is not attempted, so Table returns nil.
func (c *Client) Page(imageData []byte) (docsource.Page, error) {
	text, err := c.Recognize(imageData)
	if err != nil {
		return nil, err
	}
	return docsource.TextPage{PageText: text}, nil
}
