package ingest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
)

// thumbOffset is where the still frame is grabbed. Early enough to exist in
// any clip, late enough to skip a black first frame.
const thumbOffset = "0.1"

// makeThumbnail produces a JPEG still for a locally ingested video. When an
// ffmpeg binary is on PATH it grabs a real frame; otherwise it renders a
// placeholder card at the clip's aspect ratio so playback surfaces always
// have something to show.
func makeThumbnail(video []byte, info *VideoInfo) ([]byte, error) {
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		if thumb, err := ffmpegThumbnail(video); err == nil {
			return thumb, nil
		}
	}
	return placeholderThumbnail(info)
}

func ffmpegThumbnail(video []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "ingest-thumb-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.mp4")
	out := filepath.Join(dir, "out.jpg")
	if err := os.WriteFile(in, video, 0o600); err != nil {
		return nil, err
	}

	cmd := exec.Command("ffmpeg",
		"-ss", thumbOffset,
		"-i", in,
		"-frames:v", "1",
		"-q:v", "4",
		out,
	)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	return os.ReadFile(out)
}

func placeholderThumbnail(info *VideoInfo) ([]byte, error) {
	w, h := 360, 640
	if info != nil && info.Width > 0 && info.Height > 0 {
		// Scale to a 360px-wide card keeping the clip's aspect.
		w = 360
		h = info.Height * w / info.Width
		if h < 1 {
			h = 1
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		shade := uint8(24 + 72*y/h)
		row := color.RGBA{R: shade / 2, G: shade / 2, B: shade, A: 255}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 70}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
