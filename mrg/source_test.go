package mrg

import (
	"math/rand"
	"testing"
)

func TestSourceSeedKey(t *testing.T) {
	tests := []struct {
		seed int64
		want int
	}{
		{0, 1},
		{23, 24},
		{24, 1},
		{-1, 24},
		{-24, 1},
		{816559, 816559%24 + 1},
	}
	for _, tt := range tests {
		if got := SourceSeedKey(tt.seed); got != tt.want {
			t.Errorf("SourceSeedKey(%d) = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestSourceUint64(t *testing.T) {
	src := NewSource(0).(*Source)
	want := uint64(900432833)<<32 | 595738601
	if got := src.Uint64(); got != want {
		t.Fatalf("Uint64() = %#x, want %#x", got, want)
	}
}

func TestSourceInt63NonNegative(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 10000; i++ {
		if v := src.Int63(); v < 0 {
			t.Fatalf("Int63() = %d", v)
		}
	}
}

func TestSourceReseed(t *testing.T) {
	src := NewSource(7)
	first := src.Int63()
	src.Int63()

	src.Seed(7)
	if got := src.Int63(); got != first {
		t.Fatalf("after Seed(7): %d, want %d", got, first)
	}
}

func TestSourceDrivesRand(t *testing.T) {
	a := rand.New(NewSource(816559))
	b := rand.New(NewSource(816559 + 24))
	for i := 0; i < 1000; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("call %d: %d != %d", i, x, y)
		}
	}

	buf := make([]byte, 64)
	a.Read(buf)
	zero := 0
	for _, c := range buf {
		if c == 0 {
			zero++
		}
	}
	if zero == len(buf) {
		t.Fatal("Read produced only zero bytes")
	}
}
