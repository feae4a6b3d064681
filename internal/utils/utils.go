package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Binary size multiples.
const (
	KiB int64 = 1024
	MiB       = 1024 * KiB
	GiB       = 1024 * MiB
)

// ErrInvalidSize is wrapped by every ParseSize failure.
var ErrInvalidSize = errors.New("invalid size")

var suffixes = map[string]int64{
	"B": 1,
	"K": KiB, "KB": KiB,
	"M": MiB, "MB": MiB,
	"G": GiB, "GB": GiB,
}

// ParseSize parses strings like "500", "10K", "4MB", "1G" into a number of
// bytes. A number without a suffix is multiplied by defaultUnit.
func ParseSize(sizeStr string, defaultUnit int64) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	if sizeStr == "" {
		return 0, fmt.Errorf("%w: size string is empty", ErrInvalidSize)
	}

	// Split into an optionally signed integer and whatever follows it.
	end := 0
	if sizeStr[0] == '-' || sizeStr[0] == '+' {
		end = 1
	}
	for end < len(sizeStr) && sizeStr[end] >= '0' && sizeStr[end] <= '9' {
		end++
	}
	numPart, suffix := sizeStr[:end], strings.TrimSpace(sizeStr[end:])

	baseVal, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid size number %q", ErrInvalidSize, numPart)
	}

	mult := defaultUnit
	if suffix != "" {
		var ok bool
		if mult, ok = suffixes[suffix]; !ok {
			return 0, fmt.Errorf("%w: unknown size suffix '%s'", ErrInvalidSize, suffix)
		}
	}
	if mult <= 0 {
		return 0, fmt.Errorf("%w: unit must be positive, got %d", ErrInvalidSize, mult)
	}
	if baseVal > math.MaxInt64/mult || baseVal < math.MinInt64/mult {
		return 0, fmt.Errorf("%w: %s overflows int64", ErrInvalidSize, sizeStr)
	}
	return baseVal * mult, nil
}

// ParseMegabytes parses a plain base-10 integer count of megabytes, as given
// on the command line, into bytes. Unit suffixes and fractions are rejected.
func ParseMegabytes(mbStr string) (int64, error) {
	mb, err := strconv.ParseInt(strings.TrimSpace(mbStr), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of megabytes", ErrInvalidSize, mbStr)
	}
	if mb > math.MaxInt64/MiB || mb < math.MinInt64/MiB {
		return 0, fmt.Errorf("%w: %d MB overflows int64", ErrInvalidSize, mb)
	}
	return mb * MiB, nil
}

// ToMB converts a byte count to binary megabytes.
func ToMB(n int64) float64 {
	return float64(n) / float64(MiB)
}

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1234567 -> "1,234,567".
func FormatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}
