package txt

import (
	"math/rand/v2"
	"strings"

	"github.com/hailam/bigtext/internal/ports"
)

const (
	codeProbability = 0.3

	minTextWords    = 5
	maxTextWords    = 15
	minCommentWords = 3
	maxCommentWords = 8

	commentPrefix = "// "
)

// categories is the draw order for a line's kind. A "code" draw that misses
// codeProbability yields a blank line.
var categories = [...]ports.LineKind{
	ports.LineKindCode,
	ports.LineKindText,
	ports.LineKindComment,
	ports.LineKindBlank,
}

// Synthesizer produces random lines from the fixed content pools.
type Synthesizer struct {
	rng *rand.Rand
	sb  strings.Builder
}

// NewSynthesizer returns a Synthesizer drawing from rng.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Next returns the next line without its trailing newline, along with the
// kind of content it holds.
func (s *Synthesizer) Next() (ports.LineKind, string) {
	switch categories[s.rng.IntN(len(categories))] {
	case ports.LineKindCode:
		if s.rng.Float64() < codeProbability {
			return ports.LineKindCode, codePatterns[s.rng.IntN(len(codePatterns))]
		}
	case ports.LineKindText:
		s.sb.Reset()
		s.writeWords(minTextWords + s.rng.IntN(maxTextWords-minTextWords+1))
		s.sb.WriteString(textTerminators[s.rng.IntN(len(textTerminators))])
		return ports.LineKindText, s.sb.String()
	case ports.LineKindComment:
		s.sb.Reset()
		s.sb.WriteString(commentPrefix)
		s.writeWords(minCommentWords + s.rng.IntN(maxCommentWords-minCommentWords+1))
		return ports.LineKindComment, s.sb.String()
	}
	return ports.LineKindBlank, ""
}

func (s *Synthesizer) writeWords(n int) {
	for i := 0; i < n; i++ {
		if i > 0 {
			s.sb.WriteByte(' ')
		}
		s.sb.WriteString(commonWords[s.rng.IntN(len(commonWords))])
	}
}
