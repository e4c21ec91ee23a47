package cycle

import (
	"strconv"
	"testing"
)

// chain is a tiny deterministic system with a pre-period of 2 ticks and a
// period of 3: 0 -> 1 -> 2 -> 3 -> 4 -> 2 -> 3 -> 4 -> ...
var chain = map[int]int{0: 1, 1: 2, 2: 3, 3: 4, 4: 2}

func runChain(target int) int64 {
	state := 0
	return Run(target,
		func() { state = chain[state] },
		func() string { return strconv.Itoa(state) },
		func() int64 { return int64(state * 10) },
	)
}

func directChain(target int) int64 {
	state := 0
	for i := 0; i < target; i++ {
		state = chain[state]
	}
	return int64(state * 10)
}

func TestRun_MatchesDirectSimulation(t *testing.T) {
	for _, target := range []int{1, 2, 3, 4, 5, 6, 7, 10, 11, 12, 100, 1001} {
		got, want := runChain(target), directChain(target)
		if got != want {
			t.Fatalf("target %d: got %d, want %d", target, got, want)
		}
	}
}

func TestRun_HugeTargetTerminates(t *testing.T) {
	// 2 + ((1e9 - 2) mod 3) = 2 + 2, so state 4.
	if got := runChain(1_000_000_000); got != 40 {
		t.Fatalf("got %d, want 40", got)
	}
}

func TestRun_NoRepeatBeforeTarget(t *testing.T) {
	state := 0
	got := Run(5,
		func() { state++ },
		func() string { return strconv.Itoa(state) },
		func() int64 { return int64(state) },
	)
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}
