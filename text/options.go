package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	name string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithName overrides the family name read from the font's name table.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
}

// Masks are rendered at device resolution, so outlines are not hinted
// unless asked for.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingNone,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
