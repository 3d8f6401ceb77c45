// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsage(t *testing.T) {
	tests := []struct {
		name    string
		usage   Usage
		wantMB  float64
		wantStr string
	}{
		{name: "empty", usage: Usage{}, wantMB: 0, wantStr: "Photos stored: 0 | Space used: 0.00 MB"},
		{name: "two photos", usage: Usage{Count: 2, ApproxBytes: 2_250_000}, wantMB: 2.15, wantStr: "Photos stored: 2 | Space used: 2.15 MB"},
		{name: "one mebibyte", usage: Usage{Count: 1, ApproxBytes: 1 << 20}, wantMB: 1, wantStr: "Photos stored: 1 | Space used: 1.00 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMB, tt.usage.MB())
			assert.Equal(t, tt.wantStr, tt.usage.String())
		})
	}
}
