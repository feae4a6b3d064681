package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/bigtext/internal/adapters/progress"
	"github.com/hailam/bigtext/internal/adapters/txt"
	adapterutils "github.com/hailam/bigtext/internal/adapters/utils"
	"github.com/hailam/bigtext/internal/utils"
)

func TestFileService_WritesAtLeastTarget(t *testing.T) {
	out := filepath.Join(t.TempDir(), "large_test_file.txt")
	service := NewFileService(txt.New(txt.WithSeed(1)), adapterutils.NewMegabyteSizeParser(), progress.Nop{})

	summary, err := service.CreateFile(out, "1")
	require.NoError(t, err)
	require.GreaterOrEqual(t, summary.FileSize, int64(1024*1024))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Equal(t, info.Size(), summary.FileSize)

	// A second, smaller run replaces the file instead of growing it.
	summary, err = service.CreateFile(out, "0")
	require.NoError(t, err)
	info, err = os.Stat(out)
	require.NoError(t, err)
	require.Equal(t, summary.FileSize, info.Size())
	require.Zero(t, info.Size())
}

func TestFileService_SuffixedTarget(t *testing.T) {
	out := filepath.Join(t.TempDir(), "suffixed.txt")
	service := NewFileService(txt.New(txt.WithSeed(2)), adapterutils.NewUtilSizeParser(utils.MiB), progress.Nop{})

	summary, err := service.CreateFile(out, "64K")
	require.NoError(t, err)
	require.Equal(t, int64(64*1024), summary.TargetBytes)
	require.GreaterOrEqual(t, summary.FileSize, int64(64*1024))
	require.Less(t, summary.FileSize, int64(1024*1024))
}

func TestFileService_InvalidSizeLeavesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never.txt")
	service := NewFileService(txt.New(), adapterutils.NewMegabyteSizeParser(), progress.Nop{})

	for _, spec := range []string{"ten", "64K", "1.5"} {
		_, err := service.CreateFile(out, spec)
		require.True(t, errors.Is(err, utils.ErrInvalidSize), spec)
	}

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}
