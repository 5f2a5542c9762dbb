package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/dto"
	"github.com/fornolabs/pizza-contest-api/internal/handler"
	"github.com/fornolabs/pizza-contest-api/internal/service"
)

type mockCompletionService struct {
	response dto.CompletionResponse
	err      error
}

func (m *mockCompletionService) ForPizza(_ context.Context, _ uint) (dto.CompletionResponse, error) {
	if m.err != nil {
		return dto.CompletionResponse{}, m.err
	}
	return m.response, nil
}

func newCompletionApp(svc service.CompletionService) *fiber.App {
	app := fiber.New()
	app.Use(asUser(uuid.New(), "admin"))
	handler.NewCompletionHandler(svc, testLogger()).Register(app.Group("/api/admin/pizzas"))
	return app
}

func TestCompletionHandler_Success(t *testing.T) {
	svc := &mockCompletionService{response: dto.CompletionResponse{
		PizzaID:          1,
		VotedUsernames:   []string{"alice"},
		PendingUsernames: []string{"bruno"},
		TotalEligible:    2,
	}}
	app := newCompletionApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pizzas/1/completion", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data dto.CompletionResponse `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.Equal(t, []string{"bruno"}, payload.Data.PendingUsernames)
	require.Equal(t, 2, payload.Data.TotalEligible)
}

func TestCompletionHandler_UnknownPizza(t *testing.T) {
	app := newCompletionApp(&mockCompletionService{err: service.ErrPizzaNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pizzas/42/completion", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCompletionHandler_InvalidID(t *testing.T) {
	app := newCompletionApp(&mockCompletionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/pizzas/abc/completion", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
