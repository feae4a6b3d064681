package utils

import (
	"github.com/hailam/bigtext/internal/ports"
	"github.com/hailam/bigtext/internal/utils"
)

// UtilSizeParser adapts the utils.ParseSize function to the ports.SizeParser interface.
type UtilSizeParser struct {
	unit int64
}

// NewUtilSizeParser creates a size parser that reads unitless numbers as
// multiples of unit.
func NewUtilSizeParser(unit int64) ports.SizeParser {
	return &UtilSizeParser{unit: unit}
}

// Parse uses the existing utility function to parse the size string.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	return utils.ParseSize(spec, p.unit)
}

// MegabyteSizeParser accepts only a whole number of megabytes.
type MegabyteSizeParser struct{}

// NewMegabyteSizeParser creates the parser used for the size_mb argument.
func NewMegabyteSizeParser() ports.SizeParser {
	return &MegabyteSizeParser{}
}

func (p *MegabyteSizeParser) Parse(spec string) (int64, error) {
	return utils.ParseMegabytes(spec)
}
