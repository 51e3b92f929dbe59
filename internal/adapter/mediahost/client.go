// Package mediahost is the client for the remote media hosting service. It
// speaks the host's unsigned upload protocol: a multipart form POST carrying
// the file and an upload preset, answered with a JSON body describing the
// stored asset.
package mediahost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sukhraj1322/short-video-platform/internal/errs"
)

// thumbTransform is inserted into the delivery URL to derive a thumbnail:
// fill-crop to a portrait card, still frame at 0.1s.
const thumbTransform = "w_400,h_600,c_fill,so_0.1"

type Client struct {
	httpClient *http.Client
	uploadURL  string
	preset     string
}

func NewClient(uploadURL, preset string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		uploadURL:  uploadURL,
		preset:     preset,
	}
}

// Upload streams the file to the host. progress receives fractions in [0,1]
// as request body bytes are consumed by the transport; it may be nil.
func (c *Client) Upload(ctx context.Context, file []byte, progress func(float64)) (*UploadResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("file", "video")
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	total := int64(body.Len())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &progressReader{
		r:        &body,
		total:    total,
		progress: progress,
	})
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = total

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, uploadError(resp)
	}

	var result UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding host response: %v", errs.ErrUploadFailed, err)
	}
	return &result, nil
}

// ThumbnailURL derives a thumbnail locator from the delivery URL by URL
// rewriting: the transform segment goes after /upload/ and the extension
// becomes .jpg so the host serves a still frame instead of the video.
func ThumbnailURL(secureURL string) string {
	rewritten := strings.Replace(secureURL, "/upload/", "/upload/"+thumbTransform+"/", 1)
	if idx := strings.LastIndex(rewritten, "."); idx > strings.LastIndex(rewritten, "/") {
		rewritten = rewritten[:idx]
	}
	return rewritten + ".jpg"
}

func uploadError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var detail errorResponse
	if json.Unmarshal(raw, &detail) == nil && detail.Error.Message != "" {
		return fmt.Errorf("%w: host returned %d: %s", errs.ErrUploadFailed, resp.StatusCode, detail.Error.Message)
	}
	return fmt.Errorf("%w: host returned %d", errs.ErrUploadFailed, resp.StatusCode)
}

// progressReader reports the fraction of the request body handed to the
// transport. Acknowledged bytes are not observable at this layer, so consumed
// bytes are the closest honest signal.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	progress func(float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.progress != nil && p.total > 0 {
		f := float64(p.read) / float64(p.total)
		if f > 1 {
			f = 1
		}
		p.progress(f)
	}
	return n, err
}
