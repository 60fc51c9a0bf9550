package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amevide998/contact-management/models"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{Username: "hdscode", Name: "hdscode rest api"}

const testToken = "token-1"

// envelope mirrors models.WebResponse with a raw Data payload so each test
// can decode it into the concrete type it expects.
type envelope struct {
	Data   json.RawMessage        `json:"data"`
	Errors string                 `json:"errors"`
	Paging *models.PagingResponse `json:"pagingResponse"`
}

func doRequest(t *testing.T, h *Handler, method, target, body string, authenticated bool) (*http.Response, envelope) {
	t.Helper()

	router := h.Init()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if authenticated {
		req.Header.Set(tokenHeader, testToken)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	response := recorder.Result()
	t.Cleanup(func() { response.Body.Close() })

	var env envelope
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env))
	}

	return response, env
}
