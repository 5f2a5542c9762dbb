package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fornolabs/pizza-contest-api/internal/repository"
)

func TestSeedServiceApply(t *testing.T) {
	profileRepo := &fakeProfileRepo{}
	pizzaRepo := newFakePizzaRepo()
	svc := NewSeedService(profileRepo, pizzaRepo, true, "topsecret", testLogger())

	document := fmt.Sprintf(`{
		"profiles": [
			{"id": %q, "username": "alice", "email": "alice@example.com"},
			{"id": %q, "username": "boss", "email": "boss@example.com", "is_admin": true}
		],
		"pizzas": [
			{"name": "Margherita", "contestant_name": "John"},
			{"name": "Diavola"}
		]
	}`, uuid.NewString(), uuid.NewString())

	summary, err := svc.Apply(context.Background(), "topsecret", []byte(document))
	require.NoError(t, err)
	require.Equal(t, 2, summary.ProfilesCreated)
	require.Equal(t, 2, summary.PizzasCreated)
	require.Len(t, profileRepo.profiles, 2)

	pizzas, err := pizzaRepo.List(context.Background(), repository.PizzaFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, pizzas[0].OrderPosition)
	require.Equal(t, 2, pizzas[1].OrderPosition)
}

func TestSeedServiceRejectsSchemaViolations(t *testing.T) {
	svc := NewSeedService(&fakeProfileRepo{}, newFakePizzaRepo(), true, "topsecret", testLogger())

	_, err := svc.Apply(context.Background(), "topsecret", []byte(`{"pizzas": [{"contestant_name": "no name"}]}`))
	require.ErrorIs(t, err, ErrSeedInvalid)
}

func TestSeedServiceGatekeeping(t *testing.T) {
	disabled := NewSeedService(&fakeProfileRepo{}, newFakePizzaRepo(), false, "topsecret", testLogger())
	_, err := disabled.Apply(context.Background(), "topsecret", []byte(`{}`))
	require.ErrorIs(t, err, ErrSeedDisabled)

	enabled := NewSeedService(&fakeProfileRepo{}, newFakePizzaRepo(), true, "topsecret", testLogger())
	_, err = enabled.Apply(context.Background(), "wrong", []byte(`{}`))
	require.ErrorIs(t, err, ErrSeedUnauthorized)
}
