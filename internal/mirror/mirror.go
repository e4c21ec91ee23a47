// Package mirror finds reflection lines in pattern blocks. The search
// expands iteratively outward from each candidate midpoint and counts cell
// mismatches against a tolerance, so the exactly-one-smudge variant is just
// a parameter.
package mirror

import "strings"

// ReflectionRow returns the number of rows above the horizontal reflection
// line whose accumulated mismatch count equals exactly smudges, or 0 when no
// such line exists. Only the first matching line is reported.
func ReflectionRow(rows []string, smudges int) int {
	for mid := 1; mid < len(rows); mid++ {
		diffs := 0
		for a, b := mid-1, mid; a >= 0 && b < len(rows); a, b = a-1, b+1 {
			diffs += mismatches(rows[a], rows[b])
			if diffs > smudges {
				break
			}
		}
		if diffs == smudges {
			return mid
		}
	}
	return 0
}

func mismatches(a, b string) int {
	n := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// Transpose turns rows into columns: the first row becomes the first column.
func Transpose(rows []string) []string {
	if len(rows) == 0 {
		return nil
	}
	out := make([]string, len(rows[0]))
	var b strings.Builder
	for col := range rows[0] {
		b.Reset()
		for _, row := range rows {
			b.WriteByte(row[col])
		}
		out[col] = b.String()
	}
	return out
}

// Summarize scores one block: 100 per row above a horizontal line plus 1 per
// column left of a vertical line (found by transposing). A well-formed block
// has exactly one of the two.
func Summarize(rows []string, smudges int) int {
	return 100*ReflectionRow(rows, smudges) + ReflectionRow(Transpose(rows), smudges)
}

// SplitBlocks cuts the raw input into blank-line-separated pattern blocks.
func SplitBlocks(input string) [][]string {
	var blocks [][]string
	for _, part := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n") {
		var rows []string
		for _, line := range strings.Split(part, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			rows = append(rows, line)
		}
		if len(rows) > 0 {
			blocks = append(blocks, rows)
		}
	}
	return blocks
}
