package block

import (
	"github.com/queryshard/datablock/format"
	"github.com/queryshard/datablock/internal/options"
)

type builderConfig struct {
	compression format.CompressionType
}

func newBuilderConfig(opts ...BuilderOption) (*builderConfig, error) {
	cfg := &builderConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BuilderOption configures a RowBuilder or ColumnarBuilder at construction
// time, via the generic functional-options pattern in internal/options.
type BuilderOption = options.Option[*builderConfig]

// WithVariableCompression selects the codec applied to the variable region
// when the block is frozen. The fixed region is never compressed. Defaults
// to format.CompressionNone.
func WithVariableCompression(c format.CompressionType) BuilderOption {
	return options.NoError[*builderConfig](func(cfg *builderConfig) {
		cfg.compression = c
	})
}
