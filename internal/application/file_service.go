package application

import (
	"fmt"

	"github.com/hailam/bigtext/internal/ports"
)

// FileService orchestrates file generation by parsing sizes, invoking the
// generator and reporting progress.
type FileService struct {
	generator ports.FileGenerator
	parser    ports.SizeParser
	reporter  ports.ProgressReporter
}

// NewFileService constructs a FileService with the given generator, parser and reporter.
func NewFileService(generator ports.FileGenerator, parser ports.SizeParser, reporter ports.ProgressReporter) *FileService {
	return &FileService{generator: generator, parser: parser, reporter: reporter}
}

// CreateFile generates a file at outPath of at least sizeSpec (e.g., "100"
// or "10MB"). A size that does not parse fails before outPath is touched.
func (s *FileService) CreateFile(outPath, sizeSpec string) (ports.Summary, error) {
	// 1. Parse human-readable size into bytes
	sizeBytes, err := s.parser.Parse(sizeSpec)
	if err != nil {
		return ports.Summary{}, fmt.Errorf("invalid size '%s': %w", sizeSpec, err)
	}

	// 2. Generate, reporting as we go
	s.reporter.Start(outPath, sizeBytes)
	summary, err := s.generator.Generate(outPath, sizeBytes, s.reporter.Update)
	if err != nil {
		s.reporter.Abort(err)
		return ports.Summary{}, fmt.Errorf("failed to generate %s: %w", outPath, err)
	}

	// 3. Let reporters flush; the file itself is complete at this point
	if err := s.reporter.Finish(summary); err != nil {
		return summary, fmt.Errorf("failed to report on %s: %w", outPath, err)
	}
	return summary, nil
}
