// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import "math"

// DefaultRasterWidth is the fixed width of captured stills.
const DefaultRasterWidth = 400

// RasterSize sizes the still raster for a srcW x srcH feed: the width is
// fixed and the height follows the source aspect ratio as
// srcH / (srcW / width), rounded to whole pixels.
func RasterSize(srcW, srcH, width int) (int, int) {
	if srcW <= 0 || srcH <= 0 || width <= 0 {
		return 0, 0
	}
	h := float64(srcH) / (float64(srcW) / float64(width))
	return width, int(math.Round(h))
}
