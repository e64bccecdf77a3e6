// Package debounce ограничивает частоту выполнения поисковых запросов
// с защитой от применения устаревших ответов
package debounce

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay пауза после последнего вызова Query,
// по истечении которой выполняется поиск
const DefaultDelay = 300 * time.Millisecond

// LookupFunc функция поиска, результат которой дебаунсится
type LookupFunc[T any] func(ctx context.Context, query string) (T, error)

// Debouncer дебаунсер поисковых запросов.
// Вызовы Query дебаунсятся: выполняется только последний запрос
// в окне delay. Каждый поиск получает монотонно возрастающий порядковый
// номер; применяется только ответ с наибольшим номером из виденных -
// медленный ранний ответ не может затереть быстрый поздний
type Debouncer[T any] struct {
	lookup LookupFunc[T]
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64 // номер последнего запланированного поиска
	applied uint64 // номер последнего применённого ответа
}

// New создает дебаунсер поверх lookup
// delay <= 0 заменяется на DefaultDelay
func New[T any](lookup LookupFunc[T], delay time.Duration) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{
		lookup: lookup,
		delay:  delay,
	}
}

// Query планирует поиск для query
// apply вызывается с результатом только если к моменту ответа не был
// запланирован более новый запрос; устаревшие ответы отбрасываются
func (d *Debouncer[T]) Query(ctx context.Context, query string, apply func(T, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Отменяем ещё не сработавший предыдущий таймер
	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq

	d.timer = time.AfterFunc(d.delay, func() {
		d.run(ctx, seq, query, apply)
	})
}

// Flush немедленно выполняет поиск, минуя дебаунс
// Используется при явном подтверждении ввода
func (d *Debouncer[T]) Flush(ctx context.Context, query string, apply func(T, error)) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	d.run(ctx, seq, query, apply)
}

// Stop отменяет запланированный поиск
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) run(ctx context.Context, seq uint64, query string, apply func(T, error)) {
	result, err := d.lookup(ctx, query)

	d.mu.Lock()
	// Применяем только самый новый из виденных ответов
	if seq <= d.applied || seq < d.seq {
		d.mu.Unlock()
		return
	}
	d.applied = seq
	d.mu.Unlock()

	apply(result, err)
}
