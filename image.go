package lindng

import (
	"image"
	"image/color"
)

// RawImage is a decoded strip-based image. Pix holds Width*Height*
// SamplesPerPixel samples in row-major order with the samples of a pixel
// next to each other.
type RawImage struct {
	Width, Height   uint32
	BitsPerSample   []uint16 // one per sample
	SamplesPerPixel uint16
	Photometric     Photometric
	Pix             []uint32

	// IFD is the offset of the directory the image was read from.
	IFD uint64
}

// PixOffset returns the index of the first sample of pixel (x, y) in Pix.
func (m *RawImage) PixOffset(x, y int) int {
	return (y*int(m.Width) + x) * int(m.SamplesPerPixel)
}

// Sample returns sample c of pixel (x, y). It returns 0 for coordinates or
// channels outside the image.
func (m *RawImage) Sample(x, y, c int) uint32 {
	if x < 0 || y < 0 || c < 0 || x >= int(m.Width) || y >= int(m.Height) || c >= int(m.SamplesPerPixel) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)+c]
}

// scale16 maps a sample of bps bits onto 16 bits.
func scale16(v uint32, bps uint16) uint16 {
	switch {
	case bps == 16:
		return uint16(v)
	case bps > 16:
		return uint16(v >> (bps - 16))
	}
	// Replicate the high bits into the low ones so that full scale maps to 0xffff.
	out := uint32(0)
	for shift := int(16 - bps); shift > -int(bps); shift -= int(bps) {
		if shift >= 0 {
			out |= v << uint(shift)
		} else {
			out |= v >> uint(-shift)
		}
	}
	return uint16(out)
}

// Image converts m to a 16-bit image.Image. Single-sample images become
// *image.Gray16 and three-sample images *image.RGBA64; further samples
// (such as alpha in ExtraSamples) are dropped.
func (m *RawImage) Image() (image.Image, error) {
	r := image.Rect(0, 0, int(m.Width), int(m.Height))
	spp := int(m.SamplesPerPixel)
	switch {
	case spp == 1 || (spp == 2 && m.Photometric != RGB):
		img := image.NewGray16(r)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				v := scale16(m.Pix[m.PixOffset(x, y)], m.BitsPerSample[0])
				if m.Photometric == WhiteIsZero {
					v = 0xffff - v
				}
				img.SetGray16(x, y, color.Gray16{Y: v})
			}
		}
		return img, nil
	case spp >= 3 && m.Photometric != CMYK && m.Photometric != YCbCr && m.Photometric != CIELab:
		img := image.NewRGBA64(r)
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				i := m.PixOffset(x, y)
				img.SetRGBA64(x, y, color.RGBA64{
					R: scale16(m.Pix[i], m.BitsPerSample[0]),
					G: scale16(m.Pix[i+1], m.BitsPerSample[1]),
					B: scale16(m.Pix[i+2], m.BitsPerSample[2]),
					A: 0xffff,
				})
			}
		}
		return img, nil
	}
	return nil, UnsupportedLayoutError(m.Photometric.String() + " conversion")
}
