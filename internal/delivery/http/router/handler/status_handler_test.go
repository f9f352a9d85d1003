package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"encontro/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusTestConfig(deadline time.Time) *config.Config {
	cfg := &config.Config{}
	cfg.Event = &config.EventConfig{
		Name:          "Encontro da Família Veras Saldanha",
		Venue:         "Chácara Recanto",
		City:          "Mossoró",
		Date:          time.Date(2026, time.July, 11, 0, 0, 0, 0, time.Local),
		OrderDeadline: deadline,
	}

	return cfg
}

func TestStatusHandler_Status_OrderWindowOpen(t *testing.T) {
	deadline := time.Now().Add(30 * 24 * time.Hour)
	handler := NewStatusHandler(newStatusTestConfig(deadline), nil, nil, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"sistema_ativo":true`)
	assert.Contains(t, body, `"ativa":true`)
	assert.Contains(t, body, `"prazo_encerrado":false`)
	assert.Contains(t, body, "Encontro da Família Veras Saldanha")
	assert.Contains(t, body, `"ano":"2026"`)
}

func TestStatusHandler_Status_OrderWindowClosed(t *testing.T) {
	deadline := time.Now().Add(-24 * time.Hour)
	handler := NewStatusHandler(newStatusTestConfig(deadline), nil, nil, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Status(c))

	body := rec.Body.String()
	assert.Contains(t, body, `"ativa":false`)
	assert.Contains(t, body, `"prazo_encerrado":true`)
	assert.Contains(t, body, `"dias_restantes":0`)
}

func TestStatusHandler_PriceForAge(t *testing.T) {
	handler := NewStatusHandler(newStatusTestConfig(time.Now()), nil, nil, slog.Default())

	tests := []struct {
		name     string
		age      string
		contains []string
	}{
		{
			name:     "adult price",
			age:      "30",
			contains: []string{`"faixa_etaria":"13 anos ou mais"`, `"preco":290`, `"gratuito":false`},
		},
		{
			name:     "child price",
			age:      "8",
			contains: []string{`"faixa_etaria":"6 a 12 anos"`, `"preco":145`},
		},
		{
			name:     "free under six",
			age:      "4",
			contains: []string{`"gratuito":true`, `"preco":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("idade")
			c.SetParamValues(tt.age)

			require.NoError(t, handler.PriceForAge(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestStatusHandler_PriceForAge_RejectsOutOfRange(t *testing.T) {
	handler := NewStatusHandler(newStatusTestConfig(time.Now()), nil, nil, slog.Default())

	for _, age := range []string{"-1", "121", "abc"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("idade")
		c.SetParamValues(age)

		assert.Error(t, handler.PriceForAge(c), "age %s", age)
	}
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
