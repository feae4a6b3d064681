package txt

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/bigtext/internal/ports"
)

// classifyLine reports which kind a line (without newline) belongs to, or
// false if it matches none of them.
func classifyLine(line string) (ports.LineKind, bool) {
	if line == "" {
		return ports.LineKindBlank, true
	}
	if slices.Contains(codePatterns[:], line) {
		return ports.LineKindCode, true
	}
	if rest, ok := strings.CutPrefix(line, commentPrefix); ok {
		words := strings.Split(rest, " ")
		if len(words) >= minCommentWords && len(words) <= maxCommentWords && allPoolWords(words) {
			return ports.LineKindComment, true
		}
		return "", false
	}
	body := line
	if trimmed, ok := strings.CutSuffix(body, " {"); ok {
		body = trimmed
	} else if trimmed, ok := strings.CutSuffix(body, ";"); ok {
		body = trimmed
	}
	words := strings.Split(body, " ")
	if len(words) >= minTextWords && len(words) <= maxTextWords && allPoolWords(words) {
		return ports.LineKindText, true
	}
	return "", false
}

func allPoolWords(words []string) bool {
	for _, w := range words {
		if !slices.Contains(commonWords[:], w) {
			return false
		}
	}
	return true
}

func TestPools(t *testing.T) {
	require.Len(t, codePatterns, 26)
	require.Len(t, commonWords, 36)
	require.Equal(t, "#include <iostream>", codePatterns[0])
	for _, w := range commonWords {
		require.NotContains(t, w, " ")
	}
}

func TestSynthesizer_LinesBelongToAKind(t *testing.T) {
	syn := NewSynthesizer(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 20_000; i++ {
		kind, line := syn.Next()
		require.NotContains(t, line, "\n")

		got, ok := classifyLine(line)
		require.True(t, ok, "line %q matches no kind", line)
		require.Equal(t, kind, got, "line %q", line)
	}
}

func TestSynthesizer_Distribution(t *testing.T) {
	const n = 40_000
	syn := NewSynthesizer(rand.New(rand.NewPCG(42, 42)))
	counts := make(map[ports.LineKind]int)
	terminators := make(map[string]int)
	for i := 0; i < n; i++ {
		kind, line := syn.Next()
		counts[kind]++
		if kind == ports.LineKindText {
			switch {
			case strings.HasSuffix(line, " {"):
				terminators[" {"]++
			case strings.HasSuffix(line, ";"):
				terminators[";"]++
			default:
				terminators[""]++
			}
		}
	}

	share := func(k ports.LineKind) float64 { return float64(counts[k]) / n }
	// code: 1/4 * 0.3, blank: 1/4 + 1/4 * 0.7
	require.InDelta(t, 0.075, share(ports.LineKindCode), 0.015)
	require.InDelta(t, 0.25, share(ports.LineKindText), 0.02)
	require.InDelta(t, 0.25, share(ports.LineKindComment), 0.02)
	require.InDelta(t, 0.425, share(ports.LineKindBlank), 0.02)

	text := float64(counts[ports.LineKindText])
	require.InDelta(t, 0.5, float64(terminators[""])/text, 0.04)
	require.InDelta(t, 0.25, float64(terminators[";"])/text, 0.04)
	require.InDelta(t, 0.25, float64(terminators[" {"])/text, 0.04)
}

func TestSynthesizer_WordCountRanges(t *testing.T) {
	syn := NewSynthesizer(rand.New(rand.NewPCG(7, 7)))
	seenText := make(map[int]bool)
	seenComment := make(map[int]bool)
	for i := 0; i < 20_000; i++ {
		kind, line := syn.Next()
		switch kind {
		case ports.LineKindText:
			line = strings.TrimSuffix(strings.TrimSuffix(line, " {"), ";")
			seenText[len(strings.Split(line, " "))] = true
		case ports.LineKindComment:
			seenComment[len(strings.Split(strings.TrimPrefix(line, commentPrefix), " "))] = true
		}
	}
	for n := minTextWords; n <= maxTextWords; n++ {
		require.True(t, seenText[n], "no text line with %d words", n)
	}
	require.Len(t, seenText, maxTextWords-minTextWords+1)
	for n := minCommentWords; n <= maxCommentWords; n++ {
		require.True(t, seenComment[n], "no comment line with %d words", n)
	}
	require.Len(t, seenComment, maxCommentWords-minCommentWords+1)
}
