package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulachik/cozyconnect/internal/config"
	"github.com/abdulachik/cozyconnect/internal/generator"
	"github.com/abdulachik/cozyconnect/internal/llm"
)

type stubGenerator struct {
	result *generator.Result
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context) (*generator.Result, error) {
	return s.result, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		CORSOrigin:      "http://localhost:3001",
		RateLimitWindow: 10 * time.Minute,
		RateLimitMax:    5,
	}
}

func doRequest(s *Server, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	s.Router.ServeHTTP(w, req)
	return w
}

func TestHandleGenerate_Success(t *testing.T) {
	gen := &stubGenerator{result: &generator.Result{
		Question: "What games did you love playing as a child?",
		Metadata: generator.Metadata{
			Theme:       "hobbies",
			Subtheme:    "childhood hobbies",
			Perspective: "childhood",
			Modifier:    "nostalgic",
			WordLimit:   14,
		},
	}}
	s := New(testConfig(), gen)

	for _, method := range []string{"GET", "POST"} {
		t.Run(method, func(t *testing.T) {
			w := doRequest(s, method, "/api/generate")
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Question string             `json:"question"`
				Metadata generator.Metadata `json:"metadata"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "What games did you love playing as a child?", body.Question)
			assert.Equal(t, "childhood", body.Metadata.Perspective)
			assert.Equal(t, "hobbies", body.Metadata.Theme)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestHandleGenerate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			"provider rate limit",
			&llm.ProviderError{Provider: "groq", Status: 429, RateLimit: &llm.RateLimitInfo{Reset: "2m59s"}},
			http.StatusTooManyRequests,
			CodeProviderRateLimit,
		},
		{
			"timeout",
			fmt.Errorf("generate question: %w", llm.ErrTimeout),
			http.StatusServiceUnavailable,
			CodeGenerationFailed,
		},
		{
			"provider overload",
			&llm.ProviderError{Provider: "groq", Status: 503},
			http.StatusServiceUnavailable,
			CodeGenerationFailed,
		},
		{
			"validation failed",
			generator.ErrValidationFailed,
			http.StatusServiceUnavailable,
			CodeGenerationFailed,
		},
		{
			"generic failure",
			errors.New("boom"),
			http.StatusInternalServerError,
			CodeServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testConfig(), &stubGenerator{err: tt.err})
			w := doRequest(s, "GET", "/api/generate")

			assert.Equal(t, tt.wantStatus, w.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "error", body.Type)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitMax = 3
	gen := &stubGenerator{result: &generator.Result{Question: "q"}}
	s := New(cfg, gen)

	start := time.Now()
	for i := 0; i < 3; i++ {
		w := doRequest(s, "GET", "/api/generate")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get(HeaderRateLimitLimit))
		assert.Equal(t, strconv.Itoa(2-i), w.Header().Get(HeaderRateLimitRemaining))
	}

	w := doRequest(s, "GET", "/api/generate")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeMiddlewareRateLimit, body.Code)
	assert.Greater(t, body.Reset, int64(0))
	assert.LessOrEqual(t, body.Reset, int64(cfg.RateLimitWindow.Seconds())+1)

	reset, err := strconv.ParseInt(w.Header().Get(HeaderRateLimitReset), 10, 64)
	require.NoError(t, err)
	assert.LessOrEqual(t, reset, start.Add(cfg.RateLimitWindow).Unix()+1)

	// The image endpoint is not behind the limiter.
	w = doRequest(s, "GET", "/api/generate/image")
	assert.NotEqual(t, http.StatusTooManyRequests, w.Code)
}

func TestHandleImage(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		s := New(testConfig(), &stubGenerator{})

		for _, path := range []string{
			"/api/generate/image",
			"/api/generate/image?title=Hello",
			"/api/generate/image?description=World",
		} {
			w := doRequest(s, "GET", path)
			assert.Equal(t, http.StatusBadRequest, w.Code, path)

			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, CodeMissingParameters, body.Code)
		}
	})

	t.Run("proxies renderer output", func(t *testing.T) {
		png := []byte("\x89PNG fake bytes")
		renderer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Hello", r.URL.Query().Get("title"))
			assert.Equal(t, "World", r.URL.Query().Get("description"))
			w.Header().Set("Content-Type", "image/png")
			w.Write(png)
		}))
		defer renderer.Close()

		cfg := testConfig()
		cfg.ImageRendererURL = renderer.URL
		s := New(cfg, &stubGenerator{})

		w := doRequest(s, "GET", "/api/generate/image?title=Hello&description=World")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, png, w.Body.Bytes())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=86400")
	})

	t.Run("renderer failure", func(t *testing.T) {
		renderer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "render failed", http.StatusInternalServerError)
		}))
		defer renderer.Close()

		cfg := testConfig()
		cfg.ImageRendererURL = renderer.URL
		s := New(cfg, &stubGenerator{})

		w := doRequest(s, "GET", "/api/generate/image?title=a&description=b")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, CodeImageGeneration, body.Code)
	})

	t.Run("renderer not configured", func(t *testing.T) {
		s := New(testConfig(), &stubGenerator{})
		w := doRequest(s, "GET", "/api/generate/image?title=a&description=b")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	s := New(testConfig(), &stubGenerator{})
	w := doRequest(s, "GET", "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
