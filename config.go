package looptab

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTabHeight       = 1
	defaultTabHPadding     = 2
	defaultIndicatorHeight = 1.0
	defaultFixedFraction   = 0.5
)

// ErrInvalidConfig wraps every construction-time configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config carries the construction parameters for a tab view. Geometry is in
// terminal cells and rows. Zero values mean defaults where a default exists.
type Config struct {
	// Length is the size of the finite content set. Required, >= 1. Fixed
	// for the lifetime of the view.
	Length int

	// TabBuilder returns the label text for a tab. Required. Builders are
	// pure functions of the modulo index and the selected flag; they never
	// see virtual indices.
	TabBuilder func(index int, selected bool) string

	// PageBuilder returns a page's content rendered into the given cell
	// box. Required. Panics inside builders are not recovered; builder
	// correctness is the host's responsibility.
	PageBuilder func(width, height, index int, selected bool) string

	// TabOverlayBuilder, when set, returns extra content stacked onto a tab
	// label (badges, counts). It participates in width measurement.
	TabOverlayBuilder func(index int) string

	// OnTabTap is invoked with the modulo index of every tapped tab. A
	// TabTappedMsg is emitted to the parent model either way.
	OnTabTap func(index int)

	// OnPageChanged is invoked exactly once per distinct settled page. A
	// PageChangedMsg is emitted to the parent model either way.
	OnPageChanged func(index int)

	// BackgroundColor and IndicatorColor override the corresponding style
	// backgrounds when non-empty.
	BackgroundColor lipgloss.Color
	IndicatorColor  lipgloss.Color

	// IndicatorHeight is the indicator's height in rows. Zero means the
	// default of 1; explicit values below 1 are rejected at construction.
	IndicatorHeight float64

	// ShowSeparator draws a separator row between the indicator and the
	// page region.
	ShowSeparator bool

	TabHeight            int // rows for the label area; zero means 1
	TabHorizontalPadding int // cells either side of a natural-width label; zero means 2, negative means none
	TabTopPadding        int // blank rows above the labels
	TabBottomPadding     int // blank rows below the labels

	// ForceFixedTabWidth gives every tab the same width,
	// FixedTabWidthFraction of the viewport, instead of its natural label
	// width. FixedTabWidthFraction defaults to 0.5 and is only read in
	// fixed mode.
	ForceFixedTabWidth    bool
	FixedTabWidthFraction float64

	// Spring overrides the physics of programmatic scrolls. Zero means a
	// critically damped default.
	Spring harmonica.Spring

	// CacheExtent is the prefetch margin in cells: how far beyond the
	// viewport items are materialized on each side. Purely a caching knob;
	// it never affects index math or settling.
	CacheExtent int

	// Width and Height fix the viewport size explicitly. When zero the
	// view sizes itself from the host's tea.WindowSizeMsg.
	Width, Height int

	// KeyMap overrides the key bindings; zero value means DefaultKeyMap.
	// The style table lives on Model.Styles (DefaultStyles plus the color
	// overrides above); assign to it after New for a fully custom look.
	KeyMap KeyMap
}

// validate rejects invalid configurations before any defaulting, so an
// explicit out-of-range value can never be mistaken for "unset".
func (c Config) validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: content length must be at least 1, got %d", ErrInvalidConfig, c.Length)
	}
	if c.TabBuilder == nil {
		return fmt.Errorf("%w: TabBuilder is required", ErrInvalidConfig)
	}
	if c.PageBuilder == nil {
		return fmt.Errorf("%w: PageBuilder is required", ErrInvalidConfig)
	}
	if c.IndicatorHeight != 0 && c.IndicatorHeight < 1 {
		return fmt.Errorf("%w: indicator height must be at least 1, got %v", ErrInvalidConfig, c.IndicatorHeight)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.TabHeight <= 0 {
		c.TabHeight = defaultTabHeight
	}
	switch {
	case c.TabHorizontalPadding == 0:
		c.TabHorizontalPadding = defaultTabHPadding
	case c.TabHorizontalPadding < 0:
		c.TabHorizontalPadding = 0
	}
	if c.TabTopPadding < 0 {
		c.TabTopPadding = 0
	}
	if c.TabBottomPadding < 0 {
		c.TabBottomPadding = 0
	}
	if c.IndicatorHeight == 0 {
		c.IndicatorHeight = defaultIndicatorHeight
	}
	if c.FixedTabWidthFraction <= 0 || c.FixedTabWidthFraction > 1 {
		c.FixedTabWidthFraction = defaultFixedFraction
	}
	if c.Spring == (harmonica.Spring{}) {
		c.Spring = defaultSpring()
	}
	if c.CacheExtent < 0 {
		c.CacheExtent = 0
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
}
