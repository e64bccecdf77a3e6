package debounce

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCollapsesBurst(t *testing.T) {
	var mu sync.Mutex
	var queries []string

	lookup := func(_ context.Context, q string) (string, error) {
		mu.Lock()
		queries = append(queries, q)
		mu.Unlock()
		return q, nil
	}

	d := New(lookup, 30*time.Millisecond)
	defer d.Stop()

	applied := make(chan string, 1)
	apply := func(result string, err error) {
		require.NoError(t, err)
		applied <- result
	}

	// Три вызова подряд внутри окна дебаунса
	d.Query(context.Background(), "А", apply)
	d.Query(context.Background(), "Ан", apply)
	d.Query(context.Background(), "Анн", apply)

	select {
	case result := <-applied:
		assert.Equal(t, "Анн", result)
	case <-time.After(time.Second):
		t.Fatal("debounced lookup never applied")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Анн"}, queries, "only the last query in the window runs")
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})

	lookup := func(_ context.Context, q string) (string, error) {
		if q == "slow" {
			// Медленный ранний ответ приходит после быстрого позднего
			<-release
		}
		return q, nil
	}

	d := New(lookup, time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var results []string
	done := make(chan struct{}, 2)

	apply := func(result string, err error) {
		require.NoError(t, err)
		mu.Lock()
		results = append(results, result)
		mu.Unlock()
		done <- struct{}{}
	}

	// Flush выполняет поиск немедленно, но с очередным порядковым номером
	go d.Flush(context.Background(), "slow", apply)
	time.Sleep(10 * time.Millisecond)
	d.Flush(context.Background(), "fast", apply)

	<-done
	close(release)

	// Даём время медленному ответу вернуться (и быть отброшенным)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"fast"}, results, "the superseded slow response must not overwrite the newer result")
}

func TestZeroDelayFallsBackToDefault(t *testing.T) {
	d := New(func(_ context.Context, q string) (string, error) { return q, nil }, 0)
	defer d.Stop()

	assert.Equal(t, DefaultDelay, d.delay)
}
