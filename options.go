package suffixindex

// BuildOption is a functional option for configuring builds.
type BuildOption func(*buildConfig)

type buildConfig struct {
	cutoff int // insertion-sort threshold for small ranges
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		cutoff: defaultCutoff,
	}
}

// WithCutoff sets the range size at or below which the builder uses insertion
// sort instead of three-way partitioning. Zero disables the cutoff except for
// single-element ranges. Negative values fall back to the default.
func WithCutoff(n int) BuildOption {
	return func(c *buildConfig) {
		if n >= 0 {
			c.cutoff = n
		}
	}
}
