package policy

import (
	"math"
	"math/rand"
	"sync"
	"testing"
)

const nTrials = 20000

func histogram(p Policy, estimates []float64, n int) []int {
	counts := make([]int, len(estimates))
	for i := 0; i < n; i++ {
		counts[p.SelectAction(estimates)]++
	}

	return counts
}

func checkUniform(t *testing.T, counts []int, n int) {
	t.Helper()
	expected := float64(n) / float64(len(counts))
	for i, c := range counts {
		if math.Abs(float64(c)-expected) > 0.1*expected {
			t.Errorf("action %d selected %d times, expected ~%.0f: %v",
				i, c, expected, counts)
		}
	}
}

func TestEpsilonGreedy_ZeroEpsilonIsGreedy(t *testing.T) {
	p := NewEpsilonGreedy(0, rand.New(rand.NewSource(1)))
	testCases := []struct {
		estimates []float64
		expected  int
	}{
		{[]float64{0.1, 0.7, 0.3}, 1},
		{[]float64{0.5, 0.5, 0.2}, 0},
		{[]float64{-1, -3, -1}, 0},
		{[]float64{2}, 0},
	}

	for _, tc := range testCases {
		for i := 0; i < 100; i++ {
			if got := p.SelectAction(tc.estimates); got != tc.expected {
				t.Fatalf("SelectAction(%v): expected %d, got %d",
					tc.estimates, tc.expected, got)
			}
		}
	}
}

func TestEpsilonGreedy_OneEpsilonIsUniform(t *testing.T) {
	p := NewEpsilonGreedy(1, rand.New(rand.NewSource(2)))
	counts := histogram(p, []float64{10, 0, -10, 5}, nTrials)
	t.Logf("Counts: %v", counts)
	checkUniform(t, counts, nTrials)
}

func TestEpsilonGreedy_ExploresAtRateEpsilon(t *testing.T) {
	p := NewEpsilonGreedy(0.2, rand.New(rand.NewSource(3)))
	counts := histogram(p, []float64{1, 0}, nTrials)
	// Greedy 80% of the time plus half of the 20% random draws.
	expected := 0.9 * nTrials
	if math.Abs(float64(counts[0])-expected) > 0.02*nTrials {
		t.Errorf("greedy action selected %d times, expected ~%.0f", counts[0], expected)
	}
}

func TestBoltzmann_EqualEstimatesAreUniform(t *testing.T) {
	for _, temperature := range []float64{0.01, 1, 100} {
		p := NewBoltzmann(temperature, rand.New(rand.NewSource(4)))
		counts := histogram(p, []float64{0.3, 0.3, 0.3}, nTrials)
		t.Logf("temperature=%v: %v", temperature, counts)
		checkUniform(t, counts, nTrials)
	}
}

func TestBoltzmann_ProportionalToExp(t *testing.T) {
	p := NewBoltzmann(1, rand.New(rand.NewSource(5)))
	estimates := []float64{0, math.Log(3)}
	counts := histogram(p, estimates, nTrials)
	// Weights 1 and 3.
	expected := 0.75 * nTrials
	if math.Abs(float64(counts[1])-expected) > 0.02*nTrials {
		t.Errorf("action 1 selected %d times, expected ~%.0f", counts[1], expected)
	}
}

func TestBoltzmann_LowTemperatureIsGreedy(t *testing.T) {
	estimates := []float64{0, 1, 0.5}
	for _, temperature := range []float64{1e-2, 1e-3, 1e-6} {
		p := NewBoltzmann(temperature, rand.New(rand.NewSource(6)))
		for i := 0; i < 1000; i++ {
			if got := p.SelectAction(estimates); got != 1 {
				t.Fatalf("temperature=%v: expected 1, got %d", temperature, got)
			}
		}
	}
}

func TestBoltzmann_UnderflowFallsBackToGreedy(t *testing.T) {
	// exp(-1e6) underflows to zero for every action.
	p := NewBoltzmann(1, rand.New(rand.NewSource(7)))
	estimates := []float64{-1e6, -2e6, -1e6 + 1}
	for i := 0; i < 100; i++ {
		if got := p.SelectAction(estimates); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	}
}

func TestIsNormal(t *testing.T) {
	testCases := []struct {
		x        float64
		expected bool
	}{
		{1, true},
		{-3.5, true},
		{0, false},
		{minNormal / 2, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}

	for _, tc := range testCases {
		if got := isNormal(tc.x); got != tc.expected {
			t.Errorf("isNormal(%v): expected %v, got %v", tc.x, tc.expected, got)
		}
	}
}

func TestNilRandUsesDefault(t *testing.T) {
	p := NewEpsilonGreedy(1, nil)
	for i := 0; i < 100; i++ {
		if a := p.SelectAction([]float64{0, 0, 0}); a < 0 || a >= 3 {
			t.Fatalf("action %d out of range", a)
		}
	}
}

func TestLockedRand_Concurrent(t *testing.T) {
	rng := NewLockedRand(8)
	p := NewBoltzmann(1, rng)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				p.SelectAction([]float64{0.1, 0.2})
			}
		}()
	}
	wg.Wait()
}

func BenchmarkEpsilonGreedy(b *testing.B) {
	p := NewEpsilonGreedy(0.1, rand.New(rand.NewSource(1)))
	estimates := []float64{0.1, 0.4, 0.2, 0.3}
	for i := 0; i < b.N; i++ {
		p.SelectAction(estimates)
	}
}

func BenchmarkBoltzmann(b *testing.B) {
	p := NewBoltzmann(0.5, rand.New(rand.NewSource(1)))
	estimates := []float64{0.1, 0.4, 0.2, 0.3}
	for i := 0; i < b.N; i++ {
		p.SelectAction(estimates)
	}
}
