package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/handler"
	"github.com/fornolabs/pizza-contest-api/internal/service"
)

type mockSeedService struct {
	lastToken string
	lastRaw   []byte
	summary   dto.SeedSummary
	err       error
}

func (m *mockSeedService) Apply(_ context.Context, token string, raw []byte) (dto.SeedSummary, error) {
	m.lastToken = token
	m.lastRaw = append([]byte(nil), raw...)
	if m.err != nil {
		return dto.SeedSummary{}, m.err
	}
	return m.summary, nil
}

func newSeedApp(svc service.SeedService) *fiber.App {
	app := fiber.New()
	handler.NewSeedHandler(svc, testLogger()).Register(app.Group("/api/tools/seed"))
	return app
}

func TestSeedHandler_Apply(t *testing.T) {
	svc := &mockSeedService{summary: dto.SeedSummary{ProfilesCreated: 2, PizzasCreated: 3}}
	app := newSeedApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/tools/seed", strings.NewReader(`{"pizzas":[]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Seed-Token", "topsecret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "topsecret", svc.lastToken)
	require.JSONEq(t, `{"pizzas":[]}`, string(svc.lastRaw))

	var payload struct {
		Data dto.SeedSummary `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.Equal(t, 3, payload.Data.PizzasCreated)
}

func TestSeedHandler_Disabled(t *testing.T) {
	app := newSeedApp(&mockSeedService{err: service.ErrSeedDisabled})

	req := httptest.NewRequest(http.MethodPost, "/api/tools/seed", strings.NewReader(`{}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSeedHandler_InvalidDocument(t *testing.T) {
	app := newSeedApp(&mockSeedService{err: service.ErrSeedInvalid})

	req := httptest.NewRequest(http.MethodPost, "/api/tools/seed", strings.NewReader(`{"bogus":true}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
