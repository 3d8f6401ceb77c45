// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
)

const bytesInMegabyte = 1024 * 1024

// Usage is the approximate storage consumption of all stored photos.
type Usage struct {
	Count       int     `json:"count"`
	ApproxBytes float64 `json:"approx_bytes"`
}

// MB converts ApproxBytes to megabytes rounded to two decimals.
func (u Usage) MB() float64 {
	return math.Round(u.ApproxBytes/bytesInMegabyte*100) / 100
}

// String renders the user-visible summary line.
func (u Usage) String() string {
	return fmt.Sprintf("Photos stored: %d | Space used: %.2f MB", u.Count, u.MB())
}
