package daemon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
)

// clockIcon draws a 16x16 clock face and wraps it in an ICO container,
// which is what the Windows tray expects.
func clockIcon() []byte {
	const size = 16
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	face := color.NRGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
	hand := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-size/2, y-size/2
			if dx*dx+dy*dy <= (size/2-1)*(size/2-1) {
				img.Set(x, y, face)
			}
		}
	}
	for i := 0; i < 5; i++ {
		img.Set(size/2, size/2-i, hand)
		img.Set(size/2+i, size/2, hand)
	}

	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		return nil
	}

	var ico bytes.Buffer
	// ICONDIR: reserved, type 1 (icon), one image.
	binary.Write(&ico, binary.LittleEndian, []uint16{0, 1, 1})
	// ICONDIRENTRY for a PNG payload.
	ico.Write([]byte{size, size, 0, 0})
	binary.Write(&ico, binary.LittleEndian, []uint16{1, 32})
	binary.Write(&ico, binary.LittleEndian, []uint32{uint32(pngData.Len()), 6 + 16})
	ico.Write(pngData.Bytes())

	return ico.Bytes()
}
