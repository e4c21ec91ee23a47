package solver

import (
	"sort"
	"strconv"
	"strings"
)

// Hand categories, weakest to strongest.
const (
	highCard = iota
	onePair
	twoPair
	threeKind
	fullHouse
	fourKind
	fiveKind
)

var (
	cardValues      = map[byte]int{'A': 14, 'K': 13, 'Q': 12, 'J': 11, 'T': 10, '9': 9, '8': 8, '7': 7, '6': 6, '5': 5, '4': 4, '3': 3, '2': 2}
	cardValuesJoker = map[byte]int{'A': 14, 'K': 13, 'Q': 12, 'T': 10, '9': 9, '8': 8, '7': 7, '6': 6, '5': 5, '4': 4, '3': 3, '2': 2, 'J': 1}
)

// handCategory classifies five cards. With joker on, every J joins the
// largest remaining group.
func handCategory(cards string, joker bool) int {
	counts := map[byte]int{}
	jokers := 0
	for i := 0; i < len(cards); i++ {
		if joker && cards[i] == 'J' {
			jokers++
			continue
		}
		counts[cards[i]]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0} // five jokers
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return fiveKind
	case groups[0] == 4:
		return fourKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

type pokerHand struct {
	cards string
	bid   int64
}

// rankWinnings sorts hands weakest first and sums bid * rank.
func rankWinnings(hands []pokerHand, joker bool) int64 {
	values := cardValues
	if joker {
		values = cardValuesJoker
	}

	sorted := append([]pokerHand(nil), hands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := handCategory(sorted[i].cards, joker), handCategory(sorted[j].cards, joker)
		if ci != cj {
			return ci < cj
		}
		// Tiebreak card by card in dealt order.
		for k := 0; k < len(sorted[i].cards) && k < len(sorted[j].cards); k++ {
			vi, vj := values[sorted[i].cards[k]], values[sorted[j].cards[k]]
			if vi != vj {
				return vi < vj
			}
		}
		return false
	})

	var total int64
	for rank, h := range sorted {
		total += int64(rank+1) * h.bid
	}
	return total
}

func day07(input string) (Answers, error) {
	var hands []pokerHand
	var ans Answers
	for _, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 || len(fields[0]) != 5 {
			ans.Skipped++
			continue
		}
		bid, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			ans.Skipped++
			continue
		}
		hands = append(hands, pokerHand{cards: fields[0], bid: bid})
	}

	ans.Part1 = rankWinnings(hands, false)
	ans.Part2 = rankWinnings(hands, true)
	return ans, nil
}
