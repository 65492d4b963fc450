package config

// Page names accepted by UIConfig.StartPage.
const (
	PageTours   = "tours"
	PageReviews = "reviews"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark.
	Theme string `yaml:"theme"`

	// TruncateAt is the collapsed description length (0 = default of 200).
	TruncateAt int `yaml:"truncate_at"`

	// Ellipsis is appended to collapsed descriptions.
	Ellipsis string `yaml:"ellipsis"`

	// StartPage is the page shown at launch.
	StartPage string `yaml:"start_page"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:      "auto",
		TruncateAt: 200,
		Ellipsis:   "....",
		StartPage:  PageTours,
	}
}
