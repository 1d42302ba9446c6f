package segment

import "github.com/charmbracelet/lipgloss"

// Configuration describes the item row and the mark indicator.
// Use DefaultConfiguration() to get sensible defaults, then override as needed.
type Configuration struct {
	Count   int // Number of items
	Current int // Selected index, kept in [0, Count)

	// Item geometry
	ItemSize    Size    // Height is used for every item; Width feeds the default width provider
	ItemSpacing float64 // Gap between two adjacent items (default: 16)
	ItemOffset  float64 // Left edge of the first item (default: 18)

	// ItemScaleFactor is the emphasis ratio between the selected item and the
	// others. Unselected items are scaled by 1/ItemScaleFactor (default: 1).
	ItemScaleFactor float64

	// Mark indicator
	ShowMark         bool           // Whether the sliding mark is shown (default: true)
	MarkCornerRadius float64        // Corner radius of the default mark (default: 8)
	MarkColor        lipgloss.Color // Fill of the default mark
	MarkOffsetY      float64        // Vertical shift applied to the mark rect (default: 0)
}

// DefaultConfiguration returns a Configuration with sensible defaults.
func DefaultConfiguration() Configuration {
	return Configuration{
		ItemSize:    Size{Width: 50, Height: 44},
		ItemSpacing: 16,
		ItemOffset:  18,

		ItemScaleFactor: 1.0,

		ShowMark:         true,
		MarkCornerRadius: 8,
		MarkColor:        lipgloss.Color("#202E2A"),
		MarkOffsetY:      0,
	}
}

// WithCount returns a copy of the config with a new item count. Current is
// clamped so it stays a valid index.
func (c Configuration) WithCount(n int) Configuration {
	c.Count = max(n, 0)
	c.Current = c.clampedCurrent()
	return c
}

// WithCurrent returns a copy of the config with a new selected index.
func (c Configuration) WithCurrent(i int) Configuration {
	c.Current = i
	return c
}

// WithItemSize returns a copy of the config with modified item size.
func (c Configuration) WithItemSize(w, h float64) Configuration {
	c.ItemSize = Size{Width: w, Height: h}
	return c
}

// WithSpacing returns a copy of the config with modified spacing and leading offset.
func (c Configuration) WithSpacing(spacing, offset float64) Configuration {
	c.ItemSpacing = spacing
	c.ItemOffset = offset
	return c
}

// WithScaleFactor returns a copy of the config with modified emphasis ratio.
func (c Configuration) WithScaleFactor(f float64) Configuration {
	c.ItemScaleFactor = f
	return c
}

// WithMark returns a copy of the config with the mark enabled/disabled.
func (c Configuration) WithMark(enabled bool) Configuration {
	c.ShowMark = enabled
	return c
}

// WithMarkStyle returns a copy of the config with modified mark appearance.
func (c Configuration) WithMarkStyle(color lipgloss.Color, cornerRadius, offsetY float64) Configuration {
	c.MarkColor = color
	c.MarkCornerRadius = cornerRadius
	c.MarkOffsetY = offsetY
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Configuration) Validate() error {
	if c.Count < 0 {
		return &ConfigError{Field: "Count", Message: "must not be negative"}
	}
	if c.Count > 0 && (c.Current < 0 || c.Current >= c.Count) {
		return &ConfigError{Field: "Current", Message: "must be within [0, Count)"}
	}
	if c.ItemScaleFactor <= 0 {
		return &ConfigError{Field: "ItemScaleFactor", Message: "must be positive"}
	}
	if c.ItemSize.Width < 0 || c.ItemSize.Height < 0 {
		return &ConfigError{Field: "ItemSize", Message: "must not be negative"}
	}
	return nil
}

// clampedCurrent pins Current to Count-1, or 0 when there are no items.
func (c Configuration) clampedCurrent() int {
	if c.Count <= 0 || c.Current < 0 {
		return 0
	}
	if c.Current >= c.Count {
		return c.Count - 1
	}
	return c.Current
}

// scaleBounds returns the smaller and larger of 1 and 1/ItemScaleFactor.
func (c Configuration) scaleBounds() (minF, maxF float64) {
	inv := 1 / c.ItemScaleFactor
	return min(1, inv), max(1, inv)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
