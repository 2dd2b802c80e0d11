package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

const testSecret = "test-secret"

type fakeStore struct {
	err error
}

func (f *fakeStore) CountByStrength(context.Context) ([]model.StrengthCount, error) {
	return []model.StrengthCount{{Strength: "Strong", Count: 2}}, f.err
}

func (f *fakeStore) AverageEntropy(context.Context) (float64, error) { return 70, f.err }

func (f *fakeStore) ListRecent(context.Context, int) ([]model.GenerationEvent, error) {
	return nil, f.err
}

func newTestRouter(t *testing.T, stats *service.StatsService, limiter *middleware.Limiter) http.Handler {
	t.Helper()
	gen := NewGeneratorHandler(service.NewGeneratorService(nil))
	return NewRouter(gen, NewStatsHandler(stats), RouterConfig{JWTSecret: testSecret, Limiter: limiter})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t, service.NewStatsService(nil), nil).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:         "empty body uses defaults",
			body:         "",
			expectedCode: http.StatusOK,
		},
		{
			name:         "numeric length",
			body:         `{"length":16}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "string length",
			body:         `{"length":"16","symbols":false}`,
			expectedCode: http.StatusOK,
		},
		{
			name:           "non numeric length",
			body:           `{"length":"sixteen"}`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: crypto.ErrInvalidLengthFormat.Error(),
		},
		{
			name:           "empty string length",
			body:           `{"length":""}`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: crypto.ErrInvalidLengthFormat.Error(),
		},
		{
			name:           "length too short",
			body:           `{"length":3}`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: crypto.ErrLengthTooShort.Error(),
		},
		{
			name:           "no classes",
			body:           `{"length":12,"uppercase":false,"lowercase":false,"numbers":false,"symbols":false}`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: crypto.ErrEmptyCharacterPool.Error(),
		},
		{
			name:           "length too long",
			body:           `{"length":100000}`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: service.ErrLengthTooLong.Error(),
		},
		{
			name:           "invalid JSON",
			body:           `not a json`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request body",
		},
	}

	router := newTestRouter(t, service.NewStatsService(nil), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
			if tt.expectedSubstr != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedSubstr)
			}
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Password, resp.Length)
			assert.Equal(t, crypto.EstimateStrength(resp.Length, resp.PoolSize).String(), resp.Display)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestHandleGenerateEmptyBodyUsesDefaults(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(""))
	newTestRouter(t, service.NewStatsService(nil), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.DefaultLength, resp.Length)
	assert.Equal(t, 94, resp.PoolSize)
}

func TestHandleGenerateBodyTooLarge(t *testing.T) {
	body := `{"length":"` + strings.Repeat("1", maxBodyBytes) + `"}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewBufferString(body))
	newTestRouter(t, service.NewStatsService(nil), nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleGenerateRateLimited(t *testing.T) {
	limiter := middleware.NewLimiter(0.001, 1)
	defer limiter.Stop()
	router := newTestRouter(t, service.NewStatsService(nil), limiter)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHandleStats(t *testing.T) {
	token, err := crypto.GenerateToken("ops", testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name         string
		stats        *service.StatsService
		auth         string
		expectedCode int
	}{
		{name: "no token", stats: service.NewStatsService(&fakeStore{}), expectedCode: http.StatusUnauthorized},
		{name: "ok", stats: service.NewStatsService(&fakeStore{}), auth: "Bearer " + token, expectedCode: http.StatusOK},
		{name: "no database", stats: service.NewStatsService(nil), auth: "Bearer " + token, expectedCode: http.StatusServiceUnavailable},
		{name: "store failure", stats: service.NewStatsService(&fakeStore{err: errors.New("db")}), auth: "Bearer " + token, expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			newTestRouter(t, tt.stats, nil).ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
			if tt.expectedCode == http.StatusOK {
				var resp model.StatsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.EqualValues(t, 2, resp.Total)
				assert.Len(t, resp.ByStrength, len(crypto.Labels))
			}
		})
	}
}

func TestHandleStatsWithoutMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	NewStatsHandler(service.NewStatsService(&fakeStore{})).
		HandleStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
