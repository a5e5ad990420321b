package txmanifest

import (
	"testing"
)

func TestDefaultConvertConfig(t *testing.T) {
	config := defaultConvertConfig()

	t.Run("mainnet by default", func(t *testing.T) {
		if config.networkID != NetworkMainnet {
			t.Errorf("Expected network 0x%02x, got 0x%02x", NetworkMainnet, config.networkID)
		}
	})

	t.Run("aliasing enabled by default", func(t *testing.T) {
		if !config.aliasing {
			t.Error("Expected aliasing to be true by default")
		}
	})

	t.Run("no blobs by default", func(t *testing.T) {
		if len(config.blobs) != 0 {
			t.Errorf("Expected no blobs, got %d", len(config.blobs))
		}
	})
}

func TestConvertOptions(t *testing.T) {
	t.Run("sets network", func(t *testing.T) {
		config := defaultConvertConfig()
		WithNetwork(NetworkStokenet)(config)

		if config.networkID != NetworkStokenet {
			t.Errorf("Expected network 0x%02x, got 0x%02x", NetworkStokenet, config.networkID)
		}
	})

	t.Run("disables aliasing", func(t *testing.T) {
		config := defaultConvertConfig()
		WithAliasing(false)(config)

		if config.aliasing {
			t.Error("Expected aliasing to be false")
		}
	})

	t.Run("attaches blobs", func(t *testing.T) {
		config := defaultConvertConfig()
		WithBlobs([][]byte{{1}, {2}})(config)

		if len(config.blobs) != 2 {
			t.Errorf("Expected 2 blobs, got %d", len(config.blobs))
		}
	})
}

func TestDefaultDecodeConfig(t *testing.T) {
	config := defaultDecodeConfig()

	if !config.valueAliasing {
		t.Error("Expected value aliasing to be true by default")
	}
	if config.maxDepth != MaxDepth {
		t.Errorf("Expected maxDepth to be %d, got %d", MaxDepth, config.maxDepth)
	}
}

func TestDecodeOptions(t *testing.T) {
	t.Run("disables value aliasing", func(t *testing.T) {
		config := defaultDecodeConfig()
		WithoutValueAliasing()(config)

		if config.valueAliasing {
			t.Error("Expected value aliasing to be false")
		}
	})

	tests := []struct {
		name  string
		depth int
		want  int
	}{
		{"lowers depth", 8, 8},
		{"keeps maximum", MaxDepth, MaxDepth},
		{"clamps above maximum", MaxDepth + 10, MaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultDecodeConfig()
			WithMaxDepth(tt.depth)(config)

			if config.maxDepth != tt.want {
				t.Errorf("Expected maxDepth to be %d, got %d", tt.want, config.maxDepth)
			}
		})
	}
}

func TestAnalyzeOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := defaultAnalyzeConfig()
		if config.trace != nil {
			t.Error("Expected no trace by default")
		}
		if !config.networkCheck {
			t.Error("Expected network check to be enabled by default")
		}
	})

	t.Run("sets trace", func(t *testing.T) {
		config := defaultAnalyzeConfig()
		trace := &ExecutionTrace{}
		WithExecutionTrace(trace)(config)

		if config.trace != trace {
			t.Error("Expected trace to be set")
		}
	})

	t.Run("disables network check", func(t *testing.T) {
		config := defaultAnalyzeConfig()
		WithNetworkCheck(false)(config)

		if config.networkCheck {
			t.Error("Expected network check to be false")
		}
	})
}

func TestWithBuilderNetwork(t *testing.T) {
	b := New(WithBuilderNetwork(NetworkLocalnet))

	if !b.networkFixed {
		t.Error("Expected network to be fixed")
	}
	if b.networkID != NetworkLocalnet {
		t.Errorf("Expected network 0x%02x, got 0x%02x", NetworkLocalnet, b.networkID)
	}

	if New().networkFixed {
		t.Error("Expected network to be free by default")
	}
}
