package png

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
)

var (
	errInvalidSize = errors.New("png: invalid image size")
	errTooLarge    = errors.New("png: image is too large")
)

type encoder struct {
	w   *bufio.Writer
	m   image.Image
	err error

	header [chunkHeaderLen]byte
	footer [chunkCRCLen]byte
}

// writeChunk frames b as a chunk of the given type. Once a write has failed
// further calls do nothing so the first error is the one reported.
func (e *encoder) writeChunk(b []byte, name string) {
	if e.err != nil {
		return
	}
	if uint64(len(b)) > math.MaxInt32 {
		e.err = errTooLarge
		return
	}

	binary.BigEndian.PutUint32(e.header[:4], uint32(len(b)))
	copy(e.header[4:], name)

	// CRC covers the type and the payload but not the length
	h := crc32.NewIEEE()
	h.Write(e.header[4:])
	h.Write(b)
	binary.BigEndian.PutUint32(e.footer[:], h.Sum32())

	for _, p := range [][]byte{e.header[:], b, e.footer[:]} {
		if _, e.err = e.w.Write(p); e.err != nil {
			return
		}
	}
}

func (e *encoder) writeIHDR() {
	var tmp [ihdrLength]byte
	b := e.m.Bounds()
	binary.BigEndian.PutUint32(tmp[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(tmp[4:8], uint32(b.Dy()))
	tmp[8] = bitDepth
	tmp[9] = colorTypeRGBA
	tmp[10] = 0 // compression method
	tmp[11] = 0 // filter method
	tmp[12] = 0 // interlace method
	e.writeChunk(tmp[:], tagIHDR)
}

// writeScanlines writes every row of the image, each prefixed with its
// filter type, to w
func (e *encoder) writeScanlines(w io.Writer) error {
	b := e.m.Bounds()
	stride := 1 + b.Dx()*bytesPerPixel
	row := make([]byte, stride)

	nrgba, _ := e.m.(*image.NRGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row[0] = filterNone
		if nrgba != nil {
			i := nrgba.PixOffset(b.Min.X, y)
			copy(row[1:], nrgba.Pix[i:i+b.Dx()*bytesPerPixel])
		} else {
			for x, i := b.Min.X, 1; x < b.Max.X; x, i = x+1, i+bytesPerPixel {
				c := color.NRGBAModel.Convert(e.m.At(x, y)).(color.NRGBA)
				row[i+0] = c.R
				row[i+1] = c.G
				row[i+2] = c.B
				row[i+3] = c.A
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) writeIDAT() {
	if e.err != nil {
		return
	}

	b := e.m.Bounds()
	buf := bytes.NewBuffer(make([]byte, 0, b.Dy()*(1+b.Dx()*bytesPerPixel)/2))

	z := zlib.NewWriter(buf)
	if e.err = e.writeScanlines(z); e.err != nil {
		return
	}
	if e.err = z.Close(); e.err != nil {
		return
	}

	e.writeChunk(buf.Bytes(), tagIDAT)
}

func (e *encoder) writeIEND() {
	e.writeChunk(nil, tagIEND)
}

// Encode writes the Image m to w in PNG format. Every pixel is stored as
// non-premultiplied 8-bit RGBA regardless of the colour model of m.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return errInvalidSize
	}
	// Dimensions are stored as 31-bit values
	if uint64(b.Dx()) > math.MaxInt32 || uint64(b.Dy()) > math.MaxInt32 {
		return errTooLarge
	}

	e := encoder{
		w: bufio.NewWriter(w),
		m: m,
	}

	if _, e.err = io.WriteString(e.w, signature); e.err != nil {
		return e.err
	}
	e.writeIHDR()
	e.writeIDAT()
	e.writeIEND()
	if e.err != nil {
		return e.err
	}

	return e.w.Flush()
}
