package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName       string
	outlineCacheSize int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName:       defaultParserName,
		outlineCacheSize: 1024,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithOutlineCacheSize sets how many glyph outlines the source keeps.
// Zero means unlimited.
func WithOutlineCacheSize(n int) SourceOption {
	return func(c *sourceConfig) {
		c.outlineCacheSize = n
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting  Hinting
	language string
}

// defaultFaceConfig returns the default face configuration.
// Hinting is off so that metrics scale linearly with size.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting:  HintingNone,
		language: "en",
	}
}

// WithHinting sets the hinting mode used for metrics and advances.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the language tag passed to the shaper (e.g., "en", "el").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}
