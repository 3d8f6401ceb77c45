// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/export_mock.go -package=mock

// File is a named in-memory file offered to a share target.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Sharer is a platform share facility.
type Sharer interface {
	// CanShare reports whether the target accepts file.
	CanShare(file File) bool
	// Share hands file over together with a title and a text.
	Share(ctx context.Context, file File, title, text string) error
}
