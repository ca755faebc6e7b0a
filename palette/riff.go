package palette

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// palVersion is LOGPALETTE.palVersion, stored little endian as 00 03.
const palVersion = 0x0300

type fileHeader struct {
	ID   riff.FourCC
	Size uint32
	Form riff.FourCC
}

type logPalette struct {
	Version    uint16
	NumEntries uint16
}

type chunkHeader struct {
	ID         riff.FourCC
	Size       uint32
	Version    uint16
	NumEntries uint16
}

type paletteEntry struct {
	R, G, B, Flags uint8
}

// ReadFrom reads every palette of a RIFF PAL stream. Nested PAL lists are flattened in file order. On error the palettes
// read so far are returned with it.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readPalettes(rd, string(formType[:]))
}

func readPalettes(r *riff.Reader, ident string) ([]color.Palette, error) {
	var res []color.Palette

	for {
		id, size, data, err := r.Next()
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, len(res), err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list from chunk %q#%d: %w", ident, len(res), err)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q#%d unsupported list type: %s", ident, len(res), string(listType[:]))
			}

			nested, err := readPalettes(list, fmt.Sprintf("%s%d.%s", ident, len(res), listType[:]))
			res = append(res, nested...)
			if err != nil {
				return res, err
			}
		case dataType:
			pal, err := readPalette(data, fmt.Sprintf("%s%d", ident, len(res)))
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, len(res), string(id[:]))
		}
	}
}

func readPalette(r io.Reader, ident string) (color.Palette, error) {
	var hdr logPalette
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("could not read header of chunk %s: %w", ident, err)
	} else if hdr.Version != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %#04x", ident, hdr.Version)
	}

	entries := make([]paletteEntry, hdr.NumEntries)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("could not read %d colors from chunk %s: %w", hdr.NumEntries, ident, err)
	}

	res := make(color.Palette, len(entries))
	for i, e := range entries {
		res[i] = color.RGBA{R: e.R, G: e.G, B: e.B, A: 0xff}
	}

	return res, nil
}

// WriteTo writes pals as one RIFF PAL stream with a data chunk per palette and returns the number of bytes written. Colours
// are quantised to 8 bits per channel and alpha is dropped.
func WriteTo(w io.Writer, pals []color.Palette) (int64, error) {
	size := uint32(4)
	for i, pal := range pals {
		if len(pal) > math.MaxUint16 {
			return 0, fmt.Errorf("palette %d has too many colors: %d", i, len(pal))
		}
		size += uint32(binary.Size(chunkHeader{}) + len(pal)*binary.Size(paletteEntry{}))
	}

	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, fileHeader{ID: riffType, Size: size, Form: palType}); err != nil {
		return cw.n, fmt.Errorf("could not write RIFF header: %w", err)
	}

	for i, pal := range pals {
		if err := writePalette(cw, pal); err != nil {
			return cw.n, fmt.Errorf("could not write chunk %d: %w", i, err)
		}
	}

	return cw.n, nil
}

func writePalette(w io.Writer, pal color.Palette) error {
	entries := make([]paletteEntry, len(pal))
	for i, col := range pal {
		c := color.NRGBAModel.Convert(col).(color.NRGBA)
		entries[i] = paletteEntry{R: c.R, G: c.G, B: c.B}
	}

	hdr := chunkHeader{
		ID:         dataType,
		Size:       uint32(binary.Size(logPalette{}) + binary.Size(entries)),
		Version:    palVersion,
		NumEntries: uint16(len(pal)),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("could not write chunk header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return fmt.Errorf("could not write %d colors: %w", len(pal), err)
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
