// Package cycle detects state recurrence under a repeated deterministic tick
// and extrapolates the observable at very large tick counts with modular
// arithmetic instead of literal iteration.
package cycle

// Run applies step once per tick until target, recording the canonical state
// digest and the observable after every application. On the first repeated
// digest the remaining ticks are folded: the answer at target is the recorded
// observable at firstSeen + ((target - firstSeen) mod period). If target is
// reached before any repeat, the observable at target is returned directly.
//
// step must be deterministic and digest must capture the full simulation
// state: two ticks with equal digests are assumed interchangeable for all
// future ticks.
func Run(target int, step func(), digest func() string, observe func() int64) int64 {
	seen := make(map[string]int)
	values := make(map[int]int64)

	for tick := 1; tick <= target; tick++ {
		step()

		d := digest()
		if first, ok := seen[d]; ok {
			period := tick - first
			rem := (target - first) % period
			return values[first+rem]
		}
		if tick == target {
			return observe()
		}

		seen[d] = tick
		values[tick] = observe()
	}
	return observe()
}
