package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paletteai/internal/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() palette.FormInput {
	return palette.FormInput{
		BusinessType: "Startup",
		Industry:     "Technology",
		Audience:     "Developers",
		DesignStyle:  "Modern",
		ColorPref:    "Cool",
		Usage:        []string{"Website", "App"},
	}
}

func TestHTTPClient_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-palette", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got palette.FormInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, sampleForm(), got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"palette":{"primary":"#112233","highlight":"","fontSuggestion":"Inter","colorPsychology":["calm"]}}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL+"/api/generate-palette", 0)
	p, err := c.Generate(context.Background(), sampleForm())
	require.NoError(t, err)
	assert.Equal(t, "#112233", p.Primary)
	assert.Equal(t, "", p.Highlight)
	assert.Equal(t, "Inter", p.FontSuggestion)
	assert.Equal(t, []string{"calm"}, p.ColorPsychology)
}

func TestHTTPClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		checkFn func(t *testing.T, err error)
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"detail":"Palette generation failed: quota"}`,
			checkFn: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, 500, se.StatusCode)
				assert.Equal(t, "Palette generation failed: quota", se.Detail)
			},
		},
		{
			name:   "validation error with structured detail",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail":[{"loc":["body","audience"]}]}`,
			checkFn: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Contains(t, se.Detail, "audience")
			},
		},
		{
			name:   "missing palette key",
			status: http.StatusOK,
			body:   `{"status":"ok"}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingPalette)
			},
		},
		{
			name:   "null palette",
			status: http.StatusOK,
			body:   `{"palette":null}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingPalette)
			},
		},
		{
			name:   "undecodable body",
			status: http.StatusOK,
			body:   `<html>oops</html>`,
			checkFn: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "decode response")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := NewHTTPClient(ts.URL, 0).Generate(context.Background(), sampleForm())
			require.Error(t, err)
			tt.checkFn(t, err)
		})
	}
}

func TestHTTPClient_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := NewHTTPClient(url, 0).Generate(context.Background(), sampleForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http request")
}

func TestHTTPClient_SingleRequestNoRetry(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL, 0).Generate(context.Background(), sampleForm())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewHTTPClient_DefaultEndpoint(t *testing.T) {
	assert.Equal(t, DefaultEndpoint, NewHTTPClient("", 0).Endpoint())
}

func TestStatic(t *testing.T) {
	s := Static{Palette: palette.Palette{Primary: "#3A86FF"}}
	p, err := s.Generate(context.Background(), palette.FormInput{})
	require.NoError(t, err)
	assert.Equal(t, "#3A86FF", p.Primary)

	p.Primary = "#000000"
	again, err := s.Generate(context.Background(), palette.FormInput{})
	require.NoError(t, err)
	assert.Equal(t, "#3A86FF", again.Primary)

	_, err = Static{}.Generate(context.Background(), palette.FormInput{})
	assert.ErrorIs(t, err, ErrMissingPalette)
}
