package clients

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_GetAndPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Auth", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(append([]byte("echo:"), body...))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Authorization", "Bearer key")

	code, body, respHeaders, err := client.Get(srv.URL, headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "echo:", string(body))
	assert.Equal(t, http.MethodGet, respHeaders.Get("X-Method"))
	assert.Equal(t, "Bearer key", respHeaders.Get("X-Auth"))

	code, body, respHeaders, err = client.Post(srv.URL, nil, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, `echo:{"a":1}`, string(body))
	assert.Equal(t, http.MethodPost, respHeaders.Get("X-Method"))
}

func TestHTTPClient_ConnectionError(t *testing.T) {
	client := NewHTTPClient()

	_, _, _, err := client.Get("http://127.0.0.1:0/unreachable", nil)
	assert.Error(t, err)
}
