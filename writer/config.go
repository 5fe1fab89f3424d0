package writer

import (
	"github.com/skelcodec/animclip/format"
	"github.com/skelcodec/animclip/internal/alloc"
	"github.com/skelcodec/animclip/internal/options"
	"github.com/skelcodec/animclip/kernel"
)

// Config holds the format, range-reduction, tolerance, and envelope
// choices Compress uses to turn a raw clip into a container.
type Config struct {
	rotFormat   format.RotationFormat
	transFormat format.TranslationFormat
	rangeFlags  format.RangeReductionFlags
	tolerance   kernel.Tolerance
	compression format.CompressionType
	allocator   alloc.Allocator
}

// DefaultConfig returns the configuration Compress uses when no options
// override it: Quat96 rotation, Vec96 translation, no range reduction, no
// envelope compression, the default detection tolerance.
func DefaultConfig() Config {
	return Config{
		rotFormat:   format.Quat96,
		transFormat: format.Vec96,
		rangeFlags:  format.RangeNone,
		tolerance:   kernel.DefaultTolerance(),
		compression: format.CompressionNone,
		allocator:   alloc.NewDefaultAllocator(),
	}
}

// Option configures a Config.
type Option = options.Option[*Config]

// WithRotationFormat sets the on-disk rotation storage format.
func WithRotationFormat(f format.RotationFormat) Option {
	return options.NoError(func(c *Config) { c.rotFormat = f })
}

// WithTranslationFormat sets the on-disk translation storage format.
func WithTranslationFormat(f format.TranslationFormat) Option {
	return options.NoError(func(c *Config) { c.transFormat = f })
}

// WithRangeReduction sets which track types use per-clip range reduction.
func WithRangeReduction(flags format.RangeReductionFlags) Option {
	return options.NoError(func(c *Config) { c.rangeFlags = flags })
}

// WithTolerance overrides the default/constant detection tolerance.
func WithTolerance(tol kernel.Tolerance) Option {
	return options.NoError(func(c *Config) { c.tolerance = tol })
}

// WithCompression sets the outer envelope codec applied to the finished
// container.
func WithCompression(c format.CompressionType) Option {
	return options.NoError(func(cfg *Config) { cfg.compression = c })
}

// WithAllocator overrides the allocator backing the container's output
// buffer.
func WithAllocator(a alloc.Allocator) Option {
	return options.NoError(func(c *Config) { c.allocator = a })
}

// Validate checks the format/range-reduction combination is decodable.
func (c Config) Validate() error {
	return format.ValidateConfig(c.rotFormat, c.transFormat, c.rangeFlags)
}
