package txt

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hailam/bigtext/internal/ports"
)

const (
	// DefaultProgressInterval is the number of lines between progress callbacks.
	DefaultProgressInterval = 10_000

	defaultBufferSize = 64 * 1024
)

// TxtGenerator writes code-like text lines until a target size is reached.
type TxtGenerator struct {
	seed          uint64
	seeded        bool
	progressEvery int64
	bufSize       int
}

// Option configures a TxtGenerator.
type Option func(*TxtGenerator)

// WithSeed makes the generated content reproducible.
func WithSeed(seed uint64) Option {
	return func(g *TxtGenerator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithProgressInterval sets how many lines pass between progress callbacks.
// Zero or negative disables them.
func WithProgressInterval(lines int64) Option {
	return func(g *TxtGenerator) {
		g.progressEvery = lines
	}
}

func New(opts ...Option) ports.FileGenerator {
	g := &TxtGenerator{
		progressEvery: DefaultProgressInterval,
		bufSize:       defaultBufferSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *TxtGenerator) newRand() *rand.Rand {
	if g.seeded {
		return rand.New(rand.NewPCG(g.seed, g.seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate truncates or creates path and fills it with lines until at least
// size bytes have been written. The size check happens before each line, so
// a size of zero or less leaves an empty file.
func (g *TxtGenerator) Generate(path string, size int64, onProgress ports.ProgressFunc) (ports.Summary, error) {
	started := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return ports.Summary{}, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	syn := NewSynthesizer(g.newRand())
	w := bufio.NewWriterSize(f, g.bufSize)
	byKind := make(map[ports.LineKind]int64, len(categories))

	var written, lines int64
	for written < size {
		kind, line := syn.Next()
		if _, err := w.WriteString(line); err != nil {
			return ports.Summary{}, fmt.Errorf("failed to write line %d: %w", lines+1, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return ports.Summary{}, fmt.Errorf("failed to write line %d: %w", lines+1, err)
		}
		written += int64(len(line)) + 1
		lines++
		byKind[kind]++

		if onProgress != nil && g.progressEvery > 0 && lines%g.progressEvery == 0 {
			onProgress(ports.Progress{
				Path:         path,
				TargetBytes:  size,
				BytesWritten: written,
				Lines:        lines,
			})
		}
	}

	if err := w.Flush(); err != nil {
		return ports.Summary{}, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return ports.Summary{}, fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return ports.Summary{}, fmt.Errorf("failed to close %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return ports.Summary{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return ports.Summary{
		Path:         path,
		TargetBytes:  size,
		BytesWritten: written,
		FileSize:     info.Size(),
		Lines:        lines,
		ByKind:       byKind,
		Elapsed:      time.Since(started),
	}, nil
}
