package webcompile

import (
	"reflect"
	"testing"
)

func TestNewJSCompilerConfigDefaults(t *testing.T) {
	c := NewJSCompilerConfig()

	if c.CSP {
		t.Error("CSP should default to false")
	}
	if c.DumpInfo {
		t.Error("DumpInfo should default to false")
	}
	if c.NativeNullAssertions {
		t.Error("NativeNullAssertions should default to false")
	}
	if c.NoFrequencyBasedMinification {
		t.Error("NoFrequencyBasedMinification should default to false")
	}
	if c.OptimizationLevel != "O4" {
		t.Errorf("OptimizationLevel = %q, want %q", c.OptimizationLevel, "O4")
	}
	if !c.SourceMaps {
		t.Error("SourceMaps should default to true")
	}
	if c.Renderer != RendererAuto {
		t.Errorf("Renderer = %q, want %q", c.Renderer, RendererAuto)
	}
}

func TestJSSharedCommandOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JSCompilerConfig)
		want   []string
	}{
		{
			name:   "defaults produce no shared options",
			mutate: func(c *JSCompilerConfig) {},
			want:   nil,
		},
		{
			name:   "null assertions enabled",
			mutate: func(c *JSCompilerConfig) { c.NativeNullAssertions = true },
			want:   []string{"--native-null-assertions"},
		},
		{
			name:   "source maps disabled",
			mutate: func(c *JSCompilerConfig) { c.SourceMaps = false },
			want:   []string{"--no-source-maps"},
		},
		{
			name: "both flags keep fixed order",
			mutate: func(c *JSCompilerConfig) {
				c.NativeNullAssertions = true
				c.SourceMaps = false
			},
			want: []string{"--native-null-assertions", "--no-source-maps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewJSCompilerConfig()
			tt.mutate(&c)
			got := c.SharedCommandOptions()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SharedCommandOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSCommandOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JSCompilerConfig)
		want   []string
	}{
		{
			name:   "defaults",
			mutate: func(c *JSCompilerConfig) {},
			want:   []string{"-O4"},
		},
		{
			name:   "null assertions before the tier",
			mutate: func(c *JSCompilerConfig) { c.NativeNullAssertions = true },
			want:   []string{"--native-null-assertions", "-O4"},
		},
		{
			name: "every flag in contract order",
			mutate: func(c *JSCompilerConfig) {
				c.DumpInfo = true
				c.NoFrequencyBasedMinification = true
				c.CSP = true
				c.OptimizationLevel = "O2"
			},
			want: []string{"-O2", "--dump-info", "--no-frequency-based-minification", "--csp"},
		},
		{
			name: "out-of-range tier propagates unchanged",
			mutate: func(c *JSCompilerConfig) {
				c.OptimizationLevel = "O7"
			},
			want: []string{"-O7"},
		},
		{
			name: "shared options precede the tier",
			mutate: func(c *JSCompilerConfig) {
				c.SourceMaps = false
				c.CSP = true
			},
			want: []string{"--no-source-maps", "-O4", "--csp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewJSCompilerConfig()
			tt.mutate(&c)
			got := c.CommandOptions()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CommandOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewJSRunConfig(t *testing.T) {
	c := NewJSRunConfig(true, RendererCanvas)

	if !c.NativeNullAssertions {
		t.Error("NativeNullAssertions should carry the constructor argument")
	}
	if c.Renderer != RendererCanvas {
		t.Errorf("Renderer = %q, want %q", c.Renderer, RendererCanvas)
	}

	// Every other field keeps its standalone default
	if c.CSP || c.DumpInfo || c.NoFrequencyBasedMinification {
		t.Error("run constructor must not touch the remaining flags")
	}
	if c.OptimizationLevel != "O4" {
		t.Errorf("OptimizationLevel = %q, want %q", c.OptimizationLevel, "O4")
	}
	if !c.SourceMaps {
		t.Error("SourceMaps should stay enabled")
	}
}

func TestNewJSRunConfigEmptyRendererDefaultsToAuto(t *testing.T) {
	c := NewJSRunConfig(false, "")
	if c.Renderer != RendererAuto {
		t.Fatalf("Renderer = %q, want %q", c.Renderer, RendererAuto)
	}
}

func TestJSBuildKeyGolden(t *testing.T) {
	c := NewJSCompilerConfig()
	want := `{"csp":false,"dumpInfo":false,"nativeNullAssertions":false,"noFrequencyBasedMinification":false,"optimizationLevel":"O4","sourceMaps":true}`
	if got := c.BuildKey(); got != want {
		t.Errorf("BuildKey() = %s, want %s", got, want)
	}
}

func TestJSBuildKeyIgnoresRenderer(t *testing.T) {
	a := NewJSCompilerConfig()
	b := NewJSCompilerConfig()
	b.Renderer = RendererCanvas

	if a.BuildKey() != b.BuildKey() {
		t.Error("renderer must not influence the build key")
	}
}

func TestJSAnalyticsValuesAreEmptyBase(t *testing.T) {
	c := NewJSCompilerConfig()
	c.CSP = true
	c.DumpInfo = true

	values := c.BuildEventAnalyticsValues()
	if values == nil {
		t.Fatal("analytics values must be a non-nil map")
	}
	if len(values) != 0 {
		t.Errorf("JS builds contribute no analytics entries, got %v", values)
	}
}
