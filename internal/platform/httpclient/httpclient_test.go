package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_DecodesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Error(s) creating horse","errors":["Father cannot be female"]}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodPost, "horses", nil, map[string]any{"name": "x"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, []string{"Father cannot be female"}, apiErr.Errors)
	assert.False(t, IsNotFound(err))
}

func TestDoJSON_RelativePathNeedsBaseURL(t *testing.T) {
	err := New(0).DoJSON(context.Background(), http.MethodGet, "/horses", nil, nil, nil)
	assert.Error(t, err)

	_, err = NewWithBaseURL("not a url", time.Second)
	assert.Error(t, err)
}
