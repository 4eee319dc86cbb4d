package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/vidrecall/internal/gateway"
	"codeberg.org/snonux/vidrecall/internal/language"
	"codeberg.org/snonux/vidrecall/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSummarizer struct {
	summary string
	err     error
	urls    []string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, videoURL string) (string, error) {
	f.urls = append(f.urls, videoURL)
	return f.summary, f.err
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSummary(t *testing.T) {
	sum := &fakeSummarizer{summary: "Test Summary"}
	srv := New(Config{}, sum, &testutil.MockTranslator{}, nil)

	rec := post(t, srv.Handler(), "/summary", gateway.SummaryRequest{URL: "https://youtu.be/MS5UjNKw_1M?t=10"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp gateway.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Test Summary", resp.Summary)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=MS5UjNKw_1M"}, sum.urls)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSummary_BadRequests(t *testing.T) {
	sum := &fakeSummarizer{}
	srv := New(Config{}, sum, &testutil.MockTranslator{}, nil)

	for _, body := range []any{
		map[string]string{},
		gateway.SummaryRequest{URL: "https://vimeo.com/1"},
	} {
		rec := post(t, srv.Handler(), "/summary", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp gateway.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
	assert.Empty(t, sum.urls)
}

func TestSummary_UpstreamFailure(t *testing.T) {
	srv := New(Config{}, &fakeSummarizer{err: errors.New("transcript unavailable")}, &testutil.MockTranslator{}, nil)

	rec := post(t, srv.Handler(), "/summary", gateway.SummaryRequest{URL: "https://youtu.be/MS5UjNKw_1M"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "transcript unavailable")
}

func TestTranslate(t *testing.T) {
	tr := &testutil.MockTranslator{
		Translations: map[language.Code]string{language.French: "Bonjour."},
		Errors:       map[language.Code]error{language.Hindi: errors.New("quota")},
	}
	srv := New(Config{}, &fakeSummarizer{}, tr, nil)

	tests := []struct {
		name     string
		body     any
		wantCode int
		wantText string
	}{
		{"french", gateway.TranslateRequest{Text: "Hello.", TargetLanguage: "fr"}, http.StatusOK, "Bonjour."},
		{"source echo", gateway.TranslateRequest{Text: "Hello.", TargetLanguage: "en"}, http.StatusOK, "Hello."},
		{"unknown language", gateway.TranslateRequest{Text: "Hello.", TargetLanguage: "de"}, http.StatusBadRequest, ""},
		{"missing text", map[string]string{"targetLanguage": "fr"}, http.StatusBadRequest, ""},
		{"upstream failure", gateway.TranslateRequest{Text: "Hello.", TargetLanguage: "hi"}, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, srv.Handler(), "/translate", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantText != "" {
				var resp gateway.TranslateResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantText, resp.TranslatedText)
			}
		})
	}

	// Only fr and hi reach the translator
	assert.Len(t, tr.Calls(), 2)
}

func TestGatewayRoundTrip(t *testing.T) {
	srv := New(Config{}, &fakeSummarizer{summary: "A. B."}, &testutil.MockTranslator{}, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := gateway.NewClient(ts.URL)
	summary, err := client.Summarize(context.Background(), "https://www.youtube.com/watch?v=MS5UjNKw_1M")
	require.NoError(t, err)
	assert.Equal(t, "A. B.", summary)

	_, err = client.Summarize(context.Background(), "https://example.com")
	var nf *gateway.NetworkFailure
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, http.StatusBadRequest, nf.StatusCode)
	assert.Equal(t, "no video identifier found in url", nf.Body)
}

func TestHealthAndCORS(t *testing.T) {
	srv := New(Config{AllowedOrigins: []string{"http://localhost:3000"}}, &fakeSummarizer{}, &testutil.MockTranslator{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)
	cfg := corsConfig([]string{"http://a", "http://b"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.AllowOrigins)
}

func TestRun_Shutdown(t *testing.T) {
	srv := New(Config{Addr: "127.0.0.1:0"}, &fakeSummarizer{}, &testutil.MockTranslator{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRun_ListenError(t *testing.T) {
	srv := New(Config{Addr: "127.0.0.1:-1"}, &fakeSummarizer{}, &testutil.MockTranslator{}, nil)
	err := srv.Run(context.Background())
	assert.Error(t, err)
}
