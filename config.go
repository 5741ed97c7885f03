package tableview

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Orientation selects the scroll (main) axis.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// VerticalDirection is the order items are laid out along the vertical axis.
type VerticalDirection uint8

const (
	TopToBottom VerticalDirection = iota
	BottomToTop
)

// HorizontalDirection is the order items are laid out along the horizontal axis.
type HorizontalDirection uint8

const (
	LeftToRight HorizontalDirection = iota
	RightToLeft
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	switch string(b) {
	case "vertical", "":
		*o = Vertical
	case "horizontal":
		*o = Horizontal
	default:
		return fmt.Errorf("%w: orientation %q", ErrInvalidConfig, b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (d VerticalDirection) String() string {
	if d == BottomToTop {
		return "bottom-to-top"
	}
	return "top-to-bottom"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *VerticalDirection) UnmarshalText(b []byte) error {
	switch string(b) {
	case "top-to-bottom", "":
		*d = TopToBottom
	case "bottom-to-top":
		*d = BottomToTop
	default:
		return fmt.Errorf("%w: vertical direction %q", ErrInvalidConfig, b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d VerticalDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d HorizontalDirection) String() string {
	if d == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *HorizontalDirection) UnmarshalText(b []byte) error {
	switch string(b) {
	case "left-to-right", "":
		*d = LeftToRight
	case "right-to-left":
		*d = RightToLeft
	default:
		return fmt.Errorf("%w: horizontal direction %q", ErrInvalidConfig, b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d HorizontalDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the layout configuration. A View copies it on Reload; changes
// made afterwards take effect on the next Reload.
type Config struct {
	Orientation Orientation         `toml:"orientation"`
	Vertical    VerticalDirection   `toml:"vertical"`
	Horizontal  HorizontalDirection `toml:"horizontal"`

	// Wrap lays items out as a first-fit wrapping grid: rows for a vertical
	// view, columns for a horizontal one.
	Wrap bool `toml:"wrap"`

	PaddingTop    float64 `toml:"padding_top"`
	PaddingBottom float64 `toml:"padding_bottom"`
	PaddingLeft   float64 `toml:"padding_left"`
	PaddingRight  float64 `toml:"padding_right"`

	// SpacingX separates horizontally adjacent items, SpacingY vertically
	// adjacent ones.
	SpacingX float64 `toml:"spacing_x"`
	SpacingY float64 `toml:"spacing_y"`

	// MinExtent is the smallest main-axis content extent.
	MinExtent float64 `toml:"min_extent"`

	// ScrollAlways keeps the content scrollable even when the items fit.
	ScrollAlways bool `toml:"scroll_always"`

	// MinMove is how far the visible region must move before a layout pass
	// does any work. Values below MinMoveThreshold are raised to it.
	MinMove float64 `toml:"min_move"`
}

// DefaultConfig returns a top-to-bottom vertical list with no padding.
func DefaultConfig() Config {
	return Config{
		Orientation: Vertical,
		Vertical:    TopToBottom,
		Horizontal:  LeftToRight,
		MinMove:     1,
	}
}

// Kind resolves the strategy the configuration selects.
func (c Config) Kind() Kind {
	if c.Wrap {
		return Grid
	}
	if c.Orientation == Horizontal {
		if c.Horizontal == RightToLeft {
			return RightLeft
		}
		return LeftRight
	}
	if c.Vertical == BottomToTop {
		return BottomUp
	}
	return TopDown
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Orientation > Horizontal {
		return fmt.Errorf("%w: orientation %d", ErrInvalidConfig, c.Orientation)
	}
	if c.Vertical > BottomToTop {
		return fmt.Errorf("%w: vertical direction %d", ErrInvalidConfig, c.Vertical)
	}
	if c.Horizontal > RightToLeft {
		return fmt.Errorf("%w: horizontal direction %d", ErrInvalidConfig, c.Horizontal)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"padding_top", c.PaddingTop},
		{"padding_bottom", c.PaddingBottom},
		{"padding_left", c.PaddingLeft},
		{"padding_right", c.PaddingRight},
		{"spacing_x", c.SpacingX},
		{"spacing_y", c.SpacingY},
		{"min_extent", c.MinExtent},
	} {
		if f.v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidConfig, f.name, f.v)
		}
	}
	return nil
}

// ParseConfig decodes a TOML document on top of DefaultConfig.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(string(data))
}
