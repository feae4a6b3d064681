package ports

// ProgressFunc receives periodic snapshots while a file is being written.
type ProgressFunc func(p Progress)

// FileGenerator is the port for anything that can produce a file.
type FileGenerator interface {
	// Generate writes lines to outPath until at least sizeBytes bytes have
	// been written. onProgress may be nil.
	Generate(outPath string, sizeBytes int64, onProgress ProgressFunc) (Summary, error)
}
