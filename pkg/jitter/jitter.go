// Package jitter добавляет случайность в интервалы отступления (backoff),
// чтобы повторные попытки разных инстансов не совпадали по времени.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMu     sync.Mutex
)

// Duration возвращает d со случайной добавкой в диапазоне [0, d*factor].
func Duration(d time.Duration, factor float64) time.Duration {
	randMu.Lock()
	j := globalRand.Float64() * factor * float64(d)
	randMu.Unlock()
	return d + time.Duration(j)
}

// DurationWithRand — вариант Duration с внешним генератором,
// для детерминированного поведения в тестах.
func DurationWithRand(d time.Duration, factor float64, rng *rand.Rand) time.Duration {
	return d + time.Duration(rng.Float64()*factor*float64(d))
}

// ExponentialBackoff вычисляет экспоненциальное отступление с джиттером.
// attempt нумеруется с нуля, результат ограничен max до применения джиттера.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, factor)
}
