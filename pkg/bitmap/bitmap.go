// Package bitmap reads and writes the renderer's uncompressed 32-bpp
// BGRA bitmap format: a 14-byte file header, a 40-byte DIB header, and
// row-major pixel data with no padding.
package bitmap

import (
	"encoding/binary"
	"io"
	"os"

	"lumentrace/pkg/core"
	"lumentrace/pkg/texture"
)

const (
	fileHeaderSize = 14
	dibHeaderSize  = 40
	signature      = 0x4D42
)

// Write encodes tex as a bitmap file at path. It reports false (rather
// than an error) on any I/O failure, matching the non-fatal bitmap
// write contract: a failed flush should not abort an in-progress
// render.
func Write(path string, tex *texture.Texture) bool {
	f, err := os.Create(path)
	if err != nil {
		return false
	}
	defer f.Close()
	return WriteTo(f, tex) == nil
}

// WriteTo encodes tex onto w in the format Write uses on disk.
func WriteTo(w io.Writer, tex *texture.Texture) error {
	width, height := tex.Width(), tex.Height()
	pixelBytes := width * height * 4

	if err := writeFileHeader(w, fileHeaderSize+dibHeaderSize+pixelBytes); err != nil {
		return err
	}
	if err := writeDIBHeader(w, width, height); err != nil {
		return err
	}

	row := make([]byte, width*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := tex.ReadPixel(x, y).To24()
			row[x*4+0] = c.B
			row[x*4+1] = c.G
			row[x*4+2] = c.R
			row[x*4+3] = 255
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeFileHeader(w io.Writer, fileSize int) error {
	var buf [fileHeaderSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], signature)
	binary.LittleEndian.PutUint32(buf[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint16(buf[6:8], 0) // reserved1
	binary.LittleEndian.PutUint16(buf[8:10], 0) // reserved2
	binary.LittleEndian.PutUint32(buf[10:14], fileHeaderSize+dibHeaderSize)
	_, err := w.Write(buf[:])
	return err
}

func writeDIBHeader(w io.Writer, width, height int) error {
	var buf [dibHeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], dibHeaderSize)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(width)))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(height)))
	binary.LittleEndian.PutUint16(buf[12:14], 1)  // planes
	binary.LittleEndian.PutUint16(buf[14:16], 32) // bits per pixel
	binary.LittleEndian.PutUint32(buf[16:20], 0)  // compression
	binary.LittleEndian.PutUint32(buf[20:24], 0)  // image size
	binary.LittleEndian.PutUint32(buf[24:28], 0)  // x_ppm
	binary.LittleEndian.PutUint32(buf[28:32], 0)  // y_ppm
	binary.LittleEndian.PutUint32(buf[32:36], 0)  // color count
	binary.LittleEndian.PutUint32(buf[36:40], 0)  // important color count
	_, err := w.Write(buf[:])
	return err
}

// Read decodes a bitmap file at path into a Texture. It returns
// (nil, false) on any I/O or format failure, matching the "absent
// texture" contract for a failed read.
func Read(path string) (*texture.Texture, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	return ReadFrom(f)
}

// ReadFrom decodes a bitmap in the format WriteTo produces.
func ReadFrom(r io.Reader) (*texture.Texture, bool) {
	var fileHeader [fileHeaderSize]byte
	if _, err := io.ReadFull(r, fileHeader[:]); err != nil {
		return nil, false
	}
	if binary.LittleEndian.Uint16(fileHeader[0:2]) != signature {
		return nil, false
	}

	var dibHeader [dibHeaderSize]byte
	if _, err := io.ReadFull(r, dibHeader[:]); err != nil {
		return nil, false
	}
	width := int(int32(binary.LittleEndian.Uint32(dibHeader[4:8])))
	height := int(int32(binary.LittleEndian.Uint32(dibHeader[8:12])))
	if width <= 0 || height <= 0 {
		return nil, false
	}

	tex := texture.New(width, height)
	row := make([]byte, width*4)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, false
		}
		for x := 0; x < width; x++ {
			b, g, rr := row[x*4+0], row[x*4+1], row[x*4+2]
			tex.WritePixel(x, y, core.Color24{R: rr, G: g, B: b}.ToColor())
		}
	}
	return tex, true
}
