// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-photo-booth/internal/utils"
)

// StatusClientClosedRequest is returned by share targets when the user
// dismissed the share dialog.
const StatusClientClosedRequest = 499

// NoopSharer is used when the platform has no share facility.
type NoopSharer struct{}

func (NoopSharer) CanShare(File) bool { return false }

func (NoopSharer) Share(context.Context, File, string, string) error {
	return ErrShareUnsupported
}

// HTTPSharer posts the file as multipart form data to a share endpoint,
// for example a messaging bot or a self-hosted upload page.
type HTTPSharer struct {
	client   *utils.HTTPClient
	endpoint string
}

// NewHTTPSharer returns a sharer posting to endpoint. With an empty endpoint
// it shares nothing.
func NewHTTPSharer(client *utils.HTTPClient, endpoint string) *HTTPSharer {
	return &HTTPSharer{client: client, endpoint: strings.TrimSpace(endpoint)}
}

// CanShare accepts non-empty image files when an endpoint is configured.
func (s *HTTPSharer) CanShare(file File) bool {
	return s.endpoint != "" && len(file.Data) > 0 && strings.HasPrefix(file.MIME, "image/")
}

func (s *HTTPSharer) Share(ctx context.Context, file File, title, text string) error {
	if s.endpoint == "" {
		return ErrShareUnsupported
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Name, bytes.NewReader(file.Data)).
		SetFormData(map[string]string{
			"title": title,
			"text":  text,
		}).
		Post(s.endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrShareCancelled, ctx.Err())
		}
		return fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	switch code := resp.StatusCode(); {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == StatusClientClosedRequest:
		return ErrShareCancelled
	case code == http.StatusUnsupportedMediaType || code == http.StatusNotImplemented:
		return ErrShareUnsupported
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrShareFailed, code)
	}
}
