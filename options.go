package toolspec

// buildOptions hold optional Build settings.
type buildOptions struct {
	strict bool
}

// BuildOption configures a single Build call.
type BuildOption func(*buildOptions)

// WithStrict makes the exported schema strict: additionalProperties: false
// for all objects and all properties required (OpenAI Structured Outputs).
// Note that strict mode overrides per-parameter Optional markers in the
// exported schema, because strict endpoints reject optional properties.
func WithStrict() BuildOption {
	return func(o *buildOptions) {
		o.strict = true
	}
}
