package kg

import "image"

// ToImage converts a decoded picture to a standard library image:
// *image.Paletted for indexed pictures, *image.NRGBA for bare 24-bit
// ones.
func (i *Image) ToImage() image.Image {
	rect := image.Rect(0, 0, i.Width, i.Height)

	if i.Palette != nil {
		img := image.NewPaletted(rect, i.Palette.ColorPalette())
		copy(img.Pix, i.Pix)
		return img
	}

	img := image.NewNRGBA(rect)
	for p := 0; p*3+2 < len(i.Pix); p++ {
		img.Pix[p*4] = i.Pix[p*3+2]
		img.Pix[p*4+1] = i.Pix[p*3+1]
		img.Pix[p*4+2] = i.Pix[p*3]
		img.Pix[p*4+3] = 0xff
	}
	return img
}

// FromImage quantizes an arbitrary image into an indexed KG picture.
func FromImage(m image.Image) (*Image, error) {
	pal, pix, err := Quantize(m)
	if err != nil {
		return nil, err
	}

	bounds := m.Bounds()
	return &Image{Width: bounds.Dx(), Height: bounds.Dy(), Palette: pal, Pix: pix}, nil
}
