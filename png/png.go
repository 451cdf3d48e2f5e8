/*
Package png implements a minimal PNG encoder.

Images are always written as 8-bit truecolour with alpha (colour type 6),
non-interlaced, with every scanline using filter type 0. The file consists of
the 8 byte signature followed by exactly three chunks; IHDR, a single IDAT
holding the zlib compressed scanlines and an empty IEND. No ancillary chunks
are written and decoding is not supported.
*/
package png

const (
	signature = "\x89PNG\r\n\x1a\n"

	bitDepth       = 8
	colorTypeRGBA  = 6
	bytesPerPixel  = 4
	filterNone     = 0
	ihdrLength     = 13
	chunkHeaderLen = 8
	chunkCRCLen    = 4
)

const (
	tagIHDR = "IHDR"
	tagIDAT = "IDAT"
	tagIEND = "IEND"
)
