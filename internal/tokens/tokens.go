// Package tokens approximates the token cost of text so responses can be
// bounded to fit a caller's context budget.
package tokens

// CharsPerToken is the fixed characters-per-token ratio used everywhere a
// budget is applied. A real tokenizer would be overkill for bounding log
// output; len/4 is the conventional fast estimate.
const CharsPerToken = 4

// Estimate returns the approximate token cost of a text span.
func Estimate(text string) int {
	return len(text) / CharsPerToken
}

// LineCost returns the approximate token cost of a single line, counting
// its trailing newline.
func LineCost(line string) int {
	return (len(line) + 1) / CharsPerToken
}

// EstimateLines returns the approximate token cost of a run of lines,
// counting one newline per line.
func EstimateLines(lines []string) int {
	chars := 0
	for _, line := range lines {
		chars += len(line) + 1
	}
	return chars / CharsPerToken
}

// Budget converts a token budget into a character budget.
func Budget(maxTokens int) int {
	return maxTokens * CharsPerToken
}
