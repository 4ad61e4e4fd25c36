package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponseBytes(t *testing.T) {
	w := httptest.NewRecorder()
	WriteResponseBytes(w, ContentType.JSON, []byte(`{"ok":true}`), http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, w.Body.String())
}

func TestWriteJSONResponseOK(t *testing.T) {
	testJson := `{"status": "ok"}`
	w := httptest.NewRecorder()
	WriteJSONResponseOK(w, testJson)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, testJson, w.Body.String())
}
