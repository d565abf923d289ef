package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path         string
		cacheControl string
	}{
		{APIPrefix + "/items", HeaderValueNoStore},
		{"/healthz", ""},
		{"/swagger/index.html", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			for _, kv := range securityHeaders {
				assert.Equal(t, kv[1], rec.Header().Get(kv[0]), kv[0])
			}
			assert.Equal(t, tt.cacheControl, rec.Header().Get(HeaderCacheControl))
		})
	}
}

func TestSecurityHeaders_OnRejectedRequests(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := serve(t, srv, http.MethodGet, APIPrefix+"/items", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueNoStore, rec.Header().Get(HeaderCacheControl))
}
