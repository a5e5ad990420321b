package txmanifest

// ConvertOption configures manifest parsing, compiling and conversion.
type ConvertOption func(*convertConfig)

// DecodeOption configures DecodeValue.
type DecodeOption func(*decodeConfig)

// AnalyzeOption configures AnalyzeManifest.
type AnalyzeOption func(*analyzeConfig)

// BuilderOption configures a ManifestBuilder.
type BuilderOption func(*ManifestBuilder)

// convertConfig holds configuration for conversions between representations.
type convertConfig struct {
	networkID uint8
	aliasing  bool
	blobs     [][]byte
}

// defaultConvertConfig returns the default conversion configuration.
func defaultConvertConfig() *convertConfig {
	return &convertConfig{
		networkID: NetworkMainnet,
		aliasing:  true,
	}
}

// WithNetwork sets the network that addresses in binary input belong to and
// that textual addresses are expected on. Default is mainnet.
func WithNetwork(id uint8) ConvertOption {
	return func(c *convertConfig) {
		c.networkID = id
	}
}

// WithAliasing enables or disables collapsing low-level calls into
// high-level instructions when decompiling or parsing.
// Default is enabled.
func WithAliasing(enabled bool) ConvertOption {
	return func(c *convertConfig) {
		c.aliasing = enabled
	}
}

// WithBlobs attaches blobs to a manifest parsed from text.
func WithBlobs(blobs [][]byte) ConvertOption {
	return func(c *convertConfig) {
		c.blobs = blobs
	}
}

// decodeConfig holds configuration for value decoding.
type decodeConfig struct {
	valueAliasing bool
	maxDepth      int
}

// defaultDecodeConfig returns the default decode configuration.
func defaultDecodeConfig() *decodeConfig {
	return &decodeConfig{
		valueAliasing: true,
		maxDepth:      MaxDepth,
	}
}

// WithoutValueAliasing returns the structural form of decoded values:
// Array<U8> instead of Bytes and Tuple instead of NonFungibleGlobalId.
func WithoutValueAliasing() DecodeOption {
	return func(c *decodeConfig) {
		c.valueAliasing = false
	}
}

// WithMaxDepth lowers the maximum nesting depth accepted while decoding.
// Values above MaxDepth are clamped.
func WithMaxDepth(depth int) DecodeOption {
	return func(c *decodeConfig) {
		if depth > MaxDepth {
			depth = MaxDepth
		}
		c.maxDepth = depth
	}
}

// analyzeConfig holds configuration for manifest analysis.
type analyzeConfig struct {
	trace        *ExecutionTrace
	networkCheck bool
}

// defaultAnalyzeConfig returns the default analysis configuration.
func defaultAnalyzeConfig() *analyzeConfig {
	return &analyzeConfig{
		networkCheck: true,
	}
}

// WithExecutionTrace supplies the resource changes observed while executing
// the manifest. Without it, worktop-wide deposits cannot be analyzed.
func WithExecutionTrace(trace *ExecutionTrace) AnalyzeOption {
	return func(c *analyzeConfig) {
		c.trace = trace
	}
}

// WithNetworkCheck enables or disables rejecting manifests that mix
// addresses from several networks. Default is enabled.
func WithNetworkCheck(enabled bool) AnalyzeOption {
	return func(c *analyzeConfig) {
		c.networkCheck = enabled
	}
}

// WithBuilderNetwork fixes the network every address added to the builder
// must belong to.
func WithBuilderNetwork(id uint8) BuilderOption {
	return func(b *ManifestBuilder) {
		b.networkID = id
		b.networkFixed = true
	}
}
