package mapper

import (
	"strings"

	"github.com/treespan/treespan/debug"
)

// DefaultSeparators is the tie-break preference order for delimiter
// detection.
var DefaultSeparators = []byte{',', ';', '\t', '|'}

// DelimiterScore is one candidate's score from Sniff, in evaluation order.
type DelimiterScore struct {
	Delim byte
	Score float64
}

// Sniff detects the field separator of delimited text over the first 100
// non-blank lines. Candidates are scored
//
//	10*linesWithSeparator + 2*averageFieldCount + consistentRunLength
//
// and the highest score wins; ties break by position in prefer (nil means
// DefaultSeparators).
func Sniff(text string, prefer []byte) byte {
	scores := SniffScores(text, prefer)
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	if debug.Sniff() {
		debug.Logf("sniff: chose %q from %v\n", string(best.Delim), scores)
	}
	return best.Delim
}

// SniffScores returns every candidate's score in preference order.
func SniffScores(text string, prefer []byte) []DelimiterScore {
	if len(prefer) == 0 {
		prefer = DefaultSeparators
	}
	var lines []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 100 {
			break
		}
	}
	scores := make([]DelimiterScore, len(prefer))
	for i, delim := range prefer {
		scores[i] = DelimiterScore{Delim: delim, Score: score(lines, delim)}
	}
	return scores
}

func score(lines []string, delim byte) float64 {
	if len(lines) == 0 {
		return 0
	}
	linesWith := 0
	totalFields := 0
	run := 0
	prev := -1
	for _, line := range lines {
		n := strings.Count(line, string(delim)) + 1
		if n > 1 {
			linesWith++
		}
		totalFields += n
		if prev != -1 && n == prev {
			run++
		}
		prev = n
	}
	avg := float64(totalFields) / float64(len(lines))
	return 10*float64(linesWith) + 2*avg + float64(run)
}
