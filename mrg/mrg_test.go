package mrg

import (
	"errors"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/tutils/mrgrand/counter/period"
)

const eps = 1e-9

func mustSeeded(t *testing.T, key int) *Generator {
	t.Helper()
	gen, err := NewSeeded(key)
	if err != nil {
		t.Fatalf("NewSeeded(%d): %v", key, err)
	}
	return gen
}

func TestSeedTable(t *testing.T) {
	base := []uint64{1013, 1997, 4001, 11981}
	seen := map[[Order]uint64]int{}

	for key := 1; key <= NumSeedKeys; key++ {
		gen := mustSeeded(t, key)
		state := gen.State()
		if state != seedTable[key-1] {
			t.Errorf("key %d: state %v, want %v", key, state, seedTable[key-1])
		}

		sorted := append([]uint64(nil), state[:]...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		for i := range base {
			if sorted[i] != base[i] {
				t.Errorf("key %d: %v is not a permutation of %v", key, state, base)
				break
			}
		}

		if prev, ok := seen[state]; ok {
			t.Errorf("key %d duplicates key %d", key, prev)
		}
		seen[state] = key
	}
}

func TestStateIsNotAliased(t *testing.T) {
	gen := mustSeeded(t, 3)
	want := seedTable[2]
	for i := 0; i < 10; i++ {
		gen.Next()
	}
	if seedTable[2] != want {
		t.Fatalf("seed table row mutated: %v", seedTable[2])
	}
	other := mustSeeded(t, 3)
	if other.State() != want {
		t.Fatalf("fresh generator state %v, want %v", other.State(), want)
	}
}

func TestSeedKeyValidation(t *testing.T) {
	for _, key := range []int{0, 25, -1} {
		gen, err := NewSeeded(key)
		if !errors.Is(err, ErrInvalidSeedKey) {
			t.Errorf("NewSeeded(%d) error = %v, want ErrInvalidSeedKey", key, err)
		}
		if gen != nil {
			t.Errorf("NewSeeded(%d) returned a generator", key)
		}
	}
	for _, key := range []int{1, 24} {
		if _, err := NewSeeded(key); err != nil {
			t.Errorf("NewSeeded(%d): %v", key, err)
		}
	}
}

func TestTimeSeedKey(t *testing.T) {
	tests := []struct {
		ms   int64
		want int
	}{
		{0, 1},
		{23, 24},
		{24, 1},
		{1000, 1000%24 + 1},
		{-1, 24},
	}
	for _, tt := range tests {
		if got := TimeSeedKey(time.UnixMilli(tt.ms)); got != tt.want {
			t.Errorf("TimeSeedKey(%dms) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestAutoSeedUsesClock(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1700000000123) }
	gen, err := New(WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	want := int(1700000000123%24) + 1
	if gen.SeedKey() != want {
		t.Fatalf("SeedKey() = %d, want %d", gen.SeedKey(), want)
	}
	if gen.State() != seedTable[want-1] {
		t.Fatalf("State() = %v, want row %d", gen.State(), want)
	}

	// Same millisecond bucket, same sequence.
	other, _ := New(WithClock(clock))
	for i := 0; i < 100; i++ {
		if a, b := gen.Uniform(), other.Uniform(); a != b {
			t.Fatalf("call %d: %v != %v", i, a, b)
		}
	}
}

func TestNewTimeSeed(t *testing.T) {
	gen := NewTimeSeed()
	if k := gen.SeedKey(); k < 1 || k > NumSeedKeys {
		t.Fatalf("SeedKey() = %d", k)
	}
	if gen.Mean() != 0 || gen.StdDev() != 1 {
		t.Fatalf("normal params = %v, %v", gen.Mean(), gen.StdDev())
	}
	if low, high := gen.UniformRange(); low != 0 || high != 1 {
		t.Fatalf("UniformRange() = %v, %v", low, high)
	}
}

func TestRecurrenceByHand(t *testing.T) {
	tests := []struct {
		key   int
		raw   [2]uint64
		state [Order]uint64
	}{
		{1, [2]uint64{900432833, 595738601}, [Order]uint64{1013, 1997, 900432833, 595738601}},
		{5, [2]uint64{436860928, 566690928}, [Order]uint64{4001, 1013, 436860928, 566690928}},
		{22, [2]uint64{2708476413, 3331308790}, [Order]uint64{1013, 11981, 2708476413, 3331308790}},
	}
	for _, tt := range tests {
		gen := mustSeeded(t, tt.key)
		for i, want := range tt.raw {
			if got := gen.Next(); got != want {
				t.Errorf("key %d step %d = %d, want %d", tt.key, i+1, got, want)
			}
		}
		if gen.State() != tt.state {
			t.Errorf("key %d state = %v, want %v", tt.key, gen.State(), tt.state)
		}
	}
}

func TestRecurrenceFormula(t *testing.T) {
	gen := mustSeeded(t, 1)
	s := gen.State()
	want := (1664543*s[0] + 1013904223*s[1] + 1289*s[2] + 124897*s[3]) % Modulus

	got := gen.Uniform()
	if math.Abs(got-(float64(want)+1)/(float64(Modulus)+1)) > eps {
		t.Fatalf("Uniform() = %v, want (%d+1)/(Modulus+1)", got, want)
	}
}

func TestRecurrenceStaysBelowModulus(t *testing.T) {
	gen := mustSeeded(t, 24)
	for i := 0; i < 100000; i++ {
		if r := gen.Next(); r >= Modulus {
			t.Fatalf("step %d: raw %d >= Modulus", i, r)
		}
	}
	for _, v := range gen.State() {
		if v >= Modulus {
			t.Fatalf("state %v has an element >= Modulus", gen.State())
		}
	}
}

func TestUniformOpenUnitInterval(t *testing.T) {
	for key := 1; key <= NumSeedKeys; key++ {
		gen := mustSeeded(t, key)
		for i := 0; i < 10000; i++ {
			u := gen.Uniform()
			if u <= 0 || u >= 1 {
				t.Fatalf("key %d call %d: %v not in (0, 1)", key, i, u)
			}
		}
	}
}

func TestUniformRange(t *testing.T) {
	gen, err := New(WithSeedKey(5), WithUniform(100, 200))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{110.17146109073809, 113.19430132603533, 108.41048054057926}
	for i, w := range want {
		if got := gen.Uniform(); math.Abs(got-w) > eps {
			t.Errorf("call %d = %v, want %v", i+1, got, w)
		}
	}
	for i := 0; i < 10000; i++ {
		u := gen.Uniform()
		if u < 100-eps || u > 200+eps {
			t.Fatalf("call %d: %v not in [100, 200]", i, u)
		}
	}
}

func TestUniformDegenerateRange(t *testing.T) {
	gen, _ := New(WithSeedKey(2), WithUniform(3, 3))
	for i := 0; i < 100; i++ {
		if u := gen.Uniform(); u != 3 {
			t.Fatalf("empty range: got %v, want 3", u)
		}
	}

	gen, _ = New(WithSeedKey(2), WithUniform(10, 0))
	for i := 0; i < 1000; i++ {
		if u := gen.Uniform(); u <= 0 || u >= 10 {
			t.Fatalf("inverted range: %v not in (0, 10)", u)
		}
	}
}

func TestNormalByHand(t *testing.T) {
	gen := mustSeeded(t, 1)
	want := []float64{
		1.1377881473046951, 1.3528065014797408,
		2.2087864224975937, -1.1406558702830654,
	}
	for i, w := range want {
		if got := gen.Normal(); math.Abs(got-w) > eps {
			t.Errorf("call %d = %v, want %v", i+1, got, w)
		}
	}

	gen, _ = New(WithSeedKey(5), WithNormal(10, 2), WithUniform(100, 200))
	gen.UniformAt(make([]float64, 3))
	for i, w := range []float64{7.241603812865256, 12.013503698705286} {
		if got := gen.Normal(); math.Abs(got-w) > eps {
			t.Errorf("scaled call %d = %v, want %v", i+1, got, w)
		}
	}
}

func TestNormalZeroStdDev(t *testing.T) {
	gen, _ := New(WithSeedKey(7), WithNormal(4, 0))
	for i := 0; i < 10; i++ {
		if z := gen.Normal(); z != 4 {
			t.Fatalf("call %d = %v, want 4", i, z)
		}
	}
}

func TestNormalStepCost(t *testing.T) {
	steps := period.NewPeriodCounter(time.Hour)
	gen, err := New(WithSeedKey(11), WithStepCounter(steps))
	if err != nil {
		t.Fatal(err)
	}

	for k := 1; k <= 50; k++ {
		before := steps.Value()
		gen.Normal()
		if d := steps.Value() - before; d != 2 {
			t.Fatalf("pair %d: fresh call took %d steps, want 2", k, d)
		}
		before = steps.Value()
		gen.Normal()
		if d := steps.Value() - before; d != 0 {
			t.Fatalf("pair %d: cached call took %d steps, want 0", k, d)
		}
		if steps.Value() != int64(2*k) {
			t.Fatalf("after %d calls: %d steps, want %d", 2*k, steps.Value(), 2*k)
		}
	}
}

func TestNormalCacheSurvivesUniform(t *testing.T) {
	a := mustSeeded(t, 9)
	b := mustSeeded(t, 9)

	a.Normal()
	b.Normal()
	b.Uniform()
	if x, y := a.Normal(), b.Normal(); x != y {
		t.Fatalf("cached value changed by an interleaved Uniform: %v != %v", x, y)
	}
}

func TestDeterminism(t *testing.T) {
	opts := []Option{WithSeedKey(13), WithNormal(-3, 0.5), WithUniform(-1, 1)}
	a, _ := New(opts...)
	b, _ := New(opts...)
	for i := 0; i < 1000; i++ {
		if x, y := a.Uniform(), b.Uniform(); x != y {
			t.Fatalf("uniform call %d: %v != %v", i, x, y)
		}
		if x, y := a.Normal(), b.Normal(); x != y {
			t.Fatalf("normal call %d: %v != %v", i, x, y)
		}
	}
}

func TestReset(t *testing.T) {
	gen := mustSeeded(t, 17)
	first := make([]float64, 11)
	gen.NormalAt(first)

	gen.Reset()
	if gen.State() != seedTable[16] {
		t.Fatalf("State() after Reset = %v", gen.State())
	}
	again := make([]float64, 11)
	gen.NormalAt(again)
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("value %d: %v != %v after Reset", i, first[i], again[i])
		}
	}
}

func TestNormalMoments(t *testing.T) {
	gen, _ := New(WithSeedKey(4), WithNormal(10, 2))
	const n = 200000
	xs := make([]float64, n)
	gen.NormalAt(xs)

	var sum, sq float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / n
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	sd := math.Sqrt(sq / (n - 1))

	if math.Abs(mean-10) > 0.05 {
		t.Errorf("sample mean = %v, want ~10", mean)
	}
	if math.Abs(sd-2) > 0.05 {
		t.Errorf("sample stddev = %v, want ~2", sd)
	}
}

func benchmarkUniform(key int, b *testing.B) {
	gen, _ := NewSeeded(key)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = gen.Uniform()
	}
}

func benchmarkNormal(key int, b *testing.B) {
	gen, _ := NewSeeded(key)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = gen.Normal()
	}
}

func BenchmarkUniform(b *testing.B) { benchmarkUniform(1, b) }
func BenchmarkNormal(b *testing.B)  { benchmarkNormal(1, b) }
