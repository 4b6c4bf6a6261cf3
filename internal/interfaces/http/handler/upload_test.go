package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadHandler_GeneratePresignedURL(t *testing.T) {
	env := newTestEnv(t)

	t.Run("returns an upload URL for valid input", func(t *testing.T) {
		query := url.Values{
			"fileName": {"phone.jpg"},
			"category": {"electronics"},
			"fileType": {"image/jpeg"},
		}
		w := env.request(t, http.MethodGet, "/generate-presigned-url?"+query.Encode(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["url"], "images/electronics/phone.jpg")
		// the response carries the URL only
		assert.NotContains(t, body, "key")
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/generate-presigned-url?fileName=phone.jpg", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("rejects path traversal in file name", func(t *testing.T) {
		query := url.Values{
			"fileName": {"../secret.txt"},
			"category": {"electronics"},
			"fileType": {"image/jpeg"},
		}
		w := env.request(t, http.MethodGet, "/generate-presigned-url?"+query.Encode(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
