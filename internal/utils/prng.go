// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource — минимальный набор случайных операций, нужный симуляции.
// Позволяет подменять генератор в тестах.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Read заполняет p случайными байтами. Реализует io.Reader, чтобы
// идентификаторы сущностей тоже зависели только от сида.
func (s *PRNGService) Read(p []byte) (int, error) {
	for i := 0; i < len(p); {
		v := s.rng.Uint64()
		for j := 0; j < 8 && i < len(p); j++ {
			p[i] = byte(v)
			v >>= 8
			i++
		}
	}
	return len(p), nil
}

// Range возвращает число в диапазоне [min, max).
func Range(r RandomSource, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance — одно испытание Бернулли с вероятностью p.
func Chance(r RandomSource, p float64) bool {
	return r.Float64() < p
}
