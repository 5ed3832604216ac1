// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при остановке приложения.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer обеспечивает потокобезопасное закрытие ресурсов.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	named         []namedFunc
	forcedTimeout time.Duration
}

type namedFunc struct {
	name string
	f    Func
}

// New создает Closer. forcedTimeout — время, отводимое на принудительное
// закрытие оставшихся ресурсов после отмены контекста в Close.
func New(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия под именем ресурса.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.named = append(c.named, namedFunc{name: name, f: f})
}

// Close закрывает ресурсы в обратном порядке регистрации.
// При отмене контекста оставшиеся ресурсы закрываются принудительно
// с собственным таймаутом.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.named
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			nf := funcs[i]
			done := make(chan error, 1)
			go func() {
				done <- nf.f(ctx)
			}()

			select {
			case closeErr := <-done:
				if closeErr != nil {
					errs = append(errs, fmt.Errorf("%s: %w", nf.name, closeErr))
				}
			case <-ctx.Done():
				errs = append(errs, c.forcedClose(funcs[:i+1])...)
				err = errors.Join(errs...)
				return
			}
		}
		err = errors.Join(errs...)
	})

	return err
}

// forcedClose параллельно закрывает оставшиеся ресурсы с локальным таймаутом.
func (c *Closer) forcedClose(funcs []namedFunc) []error {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, nf := range funcs {
		nf := nf
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := nf.f(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s (forced): %w", nf.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
