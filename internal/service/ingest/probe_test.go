package ingest

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func box(fourcc string, payload []byte) []byte {
	b := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(b, uint32(len(b)))
	copy(b[4:], fourcc)
	copy(b[8:], payload)
	return b
}

func mvhdV0(timescale, duration uint32) []byte {
	p := make([]byte, 20)
	binary.BigEndian.PutUint32(p[12:], timescale)
	binary.BigEndian.PutUint32(p[16:], duration)
	return box("mvhd", p)
}

// tkhdV0 lays out a version-0 track header: 4 bytes version+flags, 20 bytes
// of timestamps/id/duration, 8 reserved, 8 layer/alternate/volume, a 36-byte
// matrix, then width and height in 16.16 fixed point.
func tkhdV0(width, height int) []byte {
	p := make([]byte, 84)
	binary.BigEndian.PutUint32(p[76:], uint32(width)<<16)
	binary.BigEndian.PutUint32(p[80:], uint32(height)<<16)
	return box("tkhd", p)
}

// tkhdV1 widens the timestamp/duration block to 32 bytes, pushing the
// geometry to offset 88.
func tkhdV1(width, height int) []byte {
	p := make([]byte, 96)
	p[0] = 1
	binary.BigEndian.PutUint32(p[88:], uint32(width)<<16)
	binary.BigEndian.PutUint32(p[92:], uint32(height)<<16)
	return box("tkhd", p)
}

func TestProbeMP4(t *testing.T) {
	ftyp := box("ftyp", []byte("isom\x00\x00\x02\x00isomiso2"))

	t.Run("Duration And Dimensions", func(t *testing.T) {
		moov := box("moov", append(
			mvhdV0(1000, 12500),
			box("trak", tkhdV0(1080, 1920))...,
		))
		file := append(ftyp, moov...)

		info, err := probeMP4(file)

		assert.NoError(t, err)
		assert.Equal(t, 12.5, info.Duration)
		assert.Equal(t, 1080, info.Width)
		assert.Equal(t, 1920, info.Height)
	})

	t.Run("Skips Audio Track", func(t *testing.T) {
		audio := box("trak", tkhdV0(0, 0))
		video := box("trak", tkhdV0(720, 1280))
		moov := box("moov", append(append(mvhdV0(600, 3000), audio...), video...))
		file := append(ftyp, moov...)

		info, err := probeMP4(file)

		assert.NoError(t, err)
		assert.Equal(t, 5.0, info.Duration)
		assert.Equal(t, 720, info.Width)
		assert.Equal(t, 1280, info.Height)
	})

	t.Run("Version 1 Track Header", func(t *testing.T) {
		moov := box("moov", append(
			mvhdV0(1000, 8000),
			box("trak", tkhdV1(1080, 1920))...,
		))
		file := append(ftyp, moov...)

		info, err := probeMP4(file)

		assert.NoError(t, err)
		assert.Equal(t, 1080, info.Width)
		assert.Equal(t, 1920, info.Height)
	})

	t.Run("64 Bit Duration", func(t *testing.T) {
		p := make([]byte, 32)
		p[0] = 1
		binary.BigEndian.PutUint32(p[20:], 90000)
		binary.BigEndian.PutUint64(p[24:], 450000)
		moov := box("moov", append(box("mvhd", p), box("trak", tkhdV0(640, 480))...))

		info, err := probeMP4(moov)

		assert.NoError(t, err)
		assert.Equal(t, 5.0, info.Duration)
	})

	t.Run("Not An MP4", func(t *testing.T) {
		_, err := probeMP4([]byte("definitely not isobmff"))
		assert.Error(t, err)
	})

	t.Run("Truncated Box Header", func(t *testing.T) {
		bad := box("moov", nil)
		binary.BigEndian.PutUint32(bad, 4096)

		_, err := probeMP4(bad)
		assert.Error(t, err)
	})
}
