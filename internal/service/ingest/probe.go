package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// VideoInfo is the natural duration and pixel geometry of an uploaded file.
type VideoInfo struct {
	Duration float64
	Width    int
	Height   int
}

var errNoMoov = errors.New("no moov box found")

// probeMP4 walks the ISO BMFF box tree for the moov/mvhd duration and the
// first visual track's tkhd dimensions. It reads only box headers plus the
// two boxes it needs; media data is never touched.
func probeMP4(data []byte) (*VideoInfo, error) {
	moov, err := findBox(data, "moov")
	if err != nil {
		return nil, err
	}

	info := &VideoInfo{}

	mvhd, err := findBox(moov, "mvhd")
	if err != nil {
		return nil, fmt.Errorf("probe mp4: %w", err)
	}
	if err := parseMvhd(mvhd, info); err != nil {
		return nil, fmt.Errorf("probe mp4: %w", err)
	}

	// First track with a non-zero width wins; audio tracks report 0x0.
	rest := moov
	for {
		trak, next, err := findBoxAt(rest, "trak")
		if err != nil {
			break
		}
		if tkhd, err := findBox(trak, "tkhd"); err == nil {
			w, h, err := parseTkhd(tkhd)
			if err == nil && w > 0 && h > 0 {
				info.Width, info.Height = w, h
				break
			}
		}
		rest = next
	}

	return info, nil
}

// findBox returns the payload of the first box with the given fourcc at the
// top level of data.
func findBox(data []byte, fourcc string) ([]byte, error) {
	payload, _, err := findBoxAt(data, fourcc)
	return payload, err
}

// findBoxAt additionally returns the bytes following the matched box, so
// sibling boxes of the same type can be iterated.
func findBoxAt(data []byte, fourcc string) ([]byte, []byte, error) {
	for off := 0; off+8 <= len(data); {
		size := int(binary.BigEndian.Uint32(data[off:]))
		name := string(data[off+4 : off+8])
		header := 8

		switch size {
		case 0:
			size = len(data) - off
		case 1:
			if off+16 > len(data) {
				return nil, nil, errNoMoov
			}
			size64 := binary.BigEndian.Uint64(data[off+8:])
			if size64 > uint64(len(data)-off) {
				return nil, nil, errNoMoov
			}
			size = int(size64)
			header = 16
		}
		if size < header || off+size > len(data) {
			return nil, nil, errNoMoov
		}

		if name == fourcc {
			return data[off+header : off+size], data[off+size:], nil
		}
		off += size
	}
	return nil, nil, errNoMoov
}

func parseMvhd(b []byte, info *VideoInfo) error {
	if len(b) < 4 {
		return errors.New("short mvhd")
	}
	version := b[0]

	var timescale uint32
	var duration uint64
	switch version {
	case 0:
		if len(b) < 20 {
			return errors.New("short mvhd v0")
		}
		timescale = binary.BigEndian.Uint32(b[12:])
		duration = uint64(binary.BigEndian.Uint32(b[16:]))
	case 1:
		if len(b) < 32 {
			return errors.New("short mvhd v1")
		}
		timescale = binary.BigEndian.Uint32(b[20:])
		duration = binary.BigEndian.Uint64(b[24:])
	default:
		return fmt.Errorf("unknown mvhd version %d", version)
	}

	if timescale > 0 {
		info.Duration = float64(duration) / float64(timescale)
	}
	return nil
}

func parseTkhd(b []byte) (int, int, error) {
	if len(b) < 4 {
		return 0, 0, errors.New("short tkhd")
	}
	version := b[0]

	// Width and height are 16.16 fixed point at the end of the box. The
	// payload ahead of them is version+flags (4), the timestamp/id/duration
	// block (20 for v0, 32 for v1), 8 reserved, layer/alternate/volume (8),
	// and the 36-byte matrix.
	var geomOff int
	switch version {
	case 0:
		geomOff = 4 + 20 + 8 + 8 + 36
	case 1:
		geomOff = 4 + 32 + 8 + 8 + 36
	default:
		return 0, 0, fmt.Errorf("unknown tkhd version %d", version)
	}
	if len(b) < geomOff+8 {
		return 0, 0, errors.New("short tkhd")
	}

	width := int(binary.BigEndian.Uint32(b[geomOff:]) >> 16)
	height := int(binary.BigEndian.Uint32(b[geomOff+4:]) >> 16)
	return width, height, nil
}
