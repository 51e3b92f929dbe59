package mediahost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sukhraj1322/short-video-platform/internal/errs"
)

func TestClient_Upload(t *testing.T) {
	file := []byte("fake video bytes")

	t.Run("Success", func(t *testing.T) {
		var gotPreset string
		var gotFile []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			gotPreset = r.FormValue("upload_preset")

			f, _, err := r.FormFile("file")
			assert.NoError(t, err)
			gotFile, _ = io.ReadAll(f)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"secure_url": "https://res.host.test/demo/video/upload/v1/clip.mp4",
				"public_id": "clip",
				"duration": 9.4,
				"width": 1080,
				"height": 1920,
				"bytes": 16
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "unsigned_demo", 5*time.Second)

		var last float64
		resp, err := client.Upload(context.Background(), file, func(f float64) { last = f })

		assert.NoError(t, err)
		assert.Equal(t, "unsigned_demo", gotPreset)
		assert.Equal(t, file, gotFile)
		assert.Equal(t, "https://res.host.test/demo/video/upload/v1/clip.mp4", resp.SecureURL)
		assert.Equal(t, 9.4, resp.Duration)
		assert.Equal(t, int64(16), resp.Bytes)
		assert.Equal(t, 1.0, last)
	})

	t.Run("Host Error With Detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "missing", 5*time.Second)

		_, err := client.Upload(context.Background(), file, nil)

		assert.ErrorIs(t, err, errs.ErrUploadFailed)
		assert.Contains(t, err.Error(), "Upload preset not found")
	})

	t.Run("Host Error Without Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "unsigned_demo", 5*time.Second)

		_, err := client.Upload(context.Background(), file, nil)

		assert.ErrorIs(t, err, errs.ErrUploadFailed)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Unreachable Host", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "unsigned_demo", time.Second)

		_, err := client.Upload(context.Background(), file, nil)

		assert.ErrorIs(t, err, errs.ErrUploadFailed)
	})
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t,
		"https://res.host.test/demo/video/upload/w_400,h_600,c_fill,so_0.1/v1/clip.jpg",
		ThumbnailURL("https://res.host.test/demo/video/upload/v1/clip.mp4"))

	// No extension still gets .jpg appended.
	assert.Equal(t,
		"https://res.host.test/demo/video/upload/w_400,h_600,c_fill,so_0.1/v1/clip.jpg",
		ThumbnailURL("https://res.host.test/demo/video/upload/v1/clip"))
}
