//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertPlainText checks the body the checkout client expects: text with no
// JSON envelope.
func AssertPlainText(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"),
		"Content-Type %q is not text/plain", w.Header().Get("Content-Type"))
	assert.False(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{"), "unexpected JSON body: %s", w.Body.String())
}
