// Package jitter добавляет случайность к длительностям (TTL кэша), чтобы записи,
// созданные одновременно, не истекали в один момент.
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
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	r := globalRand.Float64()
	randMutex.Unlock()
	return scale(d, jitterFactor, r)
}

// DurationWithSeed работает как Duration, но с заданным генератором. Удобно для тестов.
func DurationWithSeed(d time.Duration, jitterFactor float64, rng *rand.Rand) time.Duration {
	return scale(d, jitterFactor, rng.Float64())
}

func scale(d time.Duration, jitterFactor, r float64) time.Duration {
	if d <= 0 || jitterFactor <= 0 {
		return d
	}
	return d + time.Duration(r*jitterFactor*float64(d))
}
