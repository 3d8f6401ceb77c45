// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-photo-booth/internal/encoder"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/models"
)

const (
	ShareTitle = "Camera App photo"
	ShareText  = "Check out this photo I took!"
)

// Result describes how a share request ended.
type Result struct {
	// Shared is true when the share target took the file.
	Shared bool
	// Path is the written file when the request fell back to a download.
	Path string
	// Reason is why the share target was not used.
	Reason error
}

// Exporter writes and shares photos.
type Exporter struct {
	downloadsDir string
	sharer       Sharer
	logger       *logger.Logger
}

// NewExporter returns an exporter writing into downloadsDir. A nil sharer
// behaves like [NoopSharer].
func NewExporter(downloadsDir string, sharer Sharer, log *logger.Logger) *Exporter {
	if sharer == nil {
		sharer = NoopSharer{}
	}
	return &Exporter{downloadsDir: downloadsDir, sharer: sharer, logger: log}
}

// DownloadsDir returns the directory downloads are written to.
func (e *Exporter) DownloadsDir() string {
	return e.downloadsDir
}

// Download writes the photo as <downloads dir>/<filename> and returns the
// path. An existing file with the same name is replaced.
func (e *Exporter) Download(photo models.Photo) (string, error) {
	file, err := toFile(photo)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	path, err := writeFileAtomic(e.downloadsDir, file.Name, file.Data)
	if err != nil {
		e.logger.Err(err).Str("func", "Exporter.Download").Int64("id", photo.ID).Msg("failed to write photo file")
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	e.logger.Info().Str("path", path).Int64("id", photo.ID).Msg("photo downloaded")
	return path, nil
}

// Share offers the photo to the share target and downloads it instead when
// that is not possible. The error is non-nil only when the fallback download
// fails too.
func (e *Exporter) Share(ctx context.Context, photo models.Photo) (Result, error) {
	file, err := toFile(photo)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	reason := ErrShareUnsupported
	if e.sharer.CanShare(file) {
		err = e.sharer.Share(ctx, file, ShareTitle, ShareText)
		if err == nil {
			e.logger.Info().Int64("id", photo.ID).Msg("photo shared")
			return Result{Shared: true}, nil
		}

		reason = err
		if !errors.Is(err, ErrShareCancelled) && !errors.Is(err, ErrShareUnsupported) {
			reason = fmt.Errorf("%w: %w", ErrShareFailed, err)
		}
		e.logger.Warn().Err(err).Str("func", "Exporter.Share").Int64("id", photo.ID).Msg("share failed, falling back to download")
	}

	path, err := e.Download(photo)
	if err != nil {
		return Result{Reason: reason}, err
	}

	return Result{Path: path, Reason: reason}, nil
}

func toFile(photo models.Photo) (File, error) {
	name := filepath.Base(photo.Filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return File{}, fmt.Errorf("photo %d has no file name", photo.ID)
	}

	mime, data, err := encoder.DecodeDataURL(photo.Data)
	if err != nil {
		return File{}, err
	}

	return File{Name: name, MIME: mime, Data: data}, nil
}

func writeFileAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	path := filepath.Join(dir, name)
	if err = os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("rename temp file: %w", err)
	}

	return path, nil
}
