package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

func TestAutocompleteDebouncesSuggest(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	ac := NewAutocomplete(svc, 20*time.Millisecond)
	defer ac.Stop()

	applied := make(chan []domain.CustomerSuggestion, 1)
	apply := func(s []domain.CustomerSuggestion, err error) {
		require.NoError(t, err)
		applied <- s
	}

	// Три "нажатия клавиш" подряд внутри окна дебаунса
	ac.Query(context.Background(), "М", apply)
	ac.Query(context.Background(), "Ма", apply)
	ac.Query(context.Background(), "Мар", apply)

	select {
	case s := <-applied:
		require.Len(t, s, 1)
		assert.Equal(t, "Мар", s[0].Name)
	case <-time.After(time.Second):
		t.Fatal("debounced suggest never applied")
	}

	assert.Equal(t, 1, repo.suggestHits, "only the last keystroke in the window hits the store")
}
