// Package enhance implements the image preprocessing applied before OCR.
//
// Scanned fiscal listings arrive with background gradients, compression
// noise, and broken character strokes. The pipeline here is the standard
// cleanup for that class of input: reduce to grayscale, binarize with an
// automatically selected global threshold (Otsu's method), then run one
// morphological dilation pass with a 3x3 structuring element so strokes
// split by scan artifacts reconnect.
package enhance

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ForOCR runs the full enhancement pipeline on src and returns a
// single-channel image of the same dimensions holding exactly two intensity
// values. It always succeeds; the input is not modified.
func ForOCR(src image.Image) *image.Gray {
	return Dilate(Binarize(Grayscale(src)))
}

// Grayscale converts src to a single-channel image. The source is always
// copied, so the result never shares pixels with the input.
func Grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// OtsuThreshold selects the global binarization threshold that minimizes
// intra-class intensity variance over the image histogram.
func OtsuThreshold(img *image.Gray) uint8 {
	var hist [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for _, v := range img.Pix[off : off+b.Dx()] {
			hist[v]++
		}
	}

	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}

	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var sumBack, weightBack float64
	var best float64
	var threshold uint8
	for i, n := range hist {
		weightBack += float64(n)
		if weightBack == 0 {
			continue
		}
		weightFore := float64(total) - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(i) * float64(n)

		meanBack := sumBack / weightBack
		meanFore := (sum - sumBack) / weightFore
		diff := meanBack - meanFore
		between := weightBack * weightFore * diff * diff
		if between > best {
			best = between
			threshold = uint8(i)
		}
	}
	return threshold
}

// Binarize maps every pixel strictly above the Otsu threshold to white and
// every other pixel to black, producing a strictly two-valued image.
func Binarize(img *image.Gray) *image.Gray {
	threshold := OtsuThreshold(img)
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		src := img.Pix[off : off+b.Dx()]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x, v := range src {
			if v > threshold {
				out[x] = 255
			} else {
				out[x] = 0
			}
		}
	}
	return dst
}

// Dilate applies one morphological dilation pass with a 3x3 rectangular
// structuring element: each output pixel takes the maximum value of its
// 3x3 neighborhood. Pixels outside the image are treated as black.
func Dilate(img *image.Gray) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var max uint8
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					if v := img.Pix[img.PixOffset(b.Min.X+nx, b.Min.Y+ny)]; v > max {
						max = v
					}
				}
			}
			dst.Pix[y*dst.Stride+x] = max
		}
	}
	return dst
}
