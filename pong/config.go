package pong

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Wall modes select the top bound used for the ball's vertical bounce.
const (
	// WallAsymmetric bounces at y <= 0 on top and y >= height-radius at the
	// bottom.
	WallAsymmetric = "asymmetric"
	// WallSymmetric uses radius on both walls.
	WallSymmetric = "symmetric"
)

// Config holds every tunable of the game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Paddle   PaddleConfig   `toml:"paddle"`
	Ball     BallConfig     `toml:"ball"`
	Match    MatchConfig    `toml:"match"`
	Colors   ColorConfig    `toml:"colors"`
	Terminal TerminalConfig `toml:"terminal"`
	LogFile  string         `toml:"log_file"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

type PaddleConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
}

type BallConfig struct {
	Radius    float64 `toml:"radius"`
	VelocityX float64 `toml:"velocity_x"`
	VelocityY float64 `toml:"velocity_y"`
	WallMode  string  `toml:"wall_mode"`
}

type MatchConfig struct {
	// WinScore ends the match once a side reaches it. Zero means endless.
	WinScore int     `toml:"win_score"`
	TextSize float64 `toml:"text_size"`
}

type ColorConfig struct {
	Background string `toml:"background"`
	Paddle     string `toml:"paddle"`
	Ball       string `toml:"ball"`
	Text       string `toml:"text"`
}

type TerminalConfig struct {
	// HoldMillis is how long a key counts as held after its last key event.
	// Terminals only report presses and auto-repeats, never releases.
	HoldMillis int `toml:"hold_ms"`
	FPS        int `toml:"fps"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:     "PongGame",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Paddle: PaddleConfig{Width: 20, Height: 100, Speed: 300},
		Ball: BallConfig{
			Radius:    15,
			VelocityX: 300,
			VelocityY: 300,
			WallMode:  WallAsymmetric,
		},
		Match: MatchConfig{WinScore: 0, TextSize: 20},
		Colors: ColorConfig{
			Background: "#000000",
			Paddle:     "#ffffff",
			Ball:       "#0079f1",
			Text:       "#ffffff",
		},
		Terminal: TerminalConfig{HoldMillis: 150, FPS: 60},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := cfg.Decode(string(data)); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode applies a TOML document on top of c and validates the result.
func (c *Config) Decode(doc string) error {
	md, err := toml.Decode(doc, c)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown key %q", undecoded[0].String())
	}
	return c.Validate()
}

// Validate checks ranges and colour strings.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return errors.New("paddle.width and paddle.height must be positive")
	case c.Paddle.Speed <= 0:
		return errors.New("paddle.speed must be positive")
	case c.Ball.Radius <= 0:
		return errors.New("ball.radius must be positive")
	case c.Ball.WallMode != WallAsymmetric && c.Ball.WallMode != WallSymmetric:
		return errors.Errorf("ball.wall_mode %q is not %q or %q", c.Ball.WallMode, WallAsymmetric, WallSymmetric)
	case c.Match.WinScore < 0:
		return errors.New("match.win_score must not be negative")
	case c.Match.TextSize <= 0:
		return errors.New("match.text_size must be positive")
	case c.Terminal.HoldMillis <= 0 || c.Terminal.FPS <= 0:
		return errors.New("terminal.hold_ms and terminal.fps must be positive")
	}
	_, err := c.Palette()
	return err
}

// Palette holds the resolved draw colours.
type Palette struct {
	Background color.Color
	Paddle     color.Color
	Ball       color.Color
	Text       color.Color
}

// Palette parses the configured hex colours.
func (c *Config) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		key string
		hex string
		dst *color.Color
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.paddle", c.Colors.Paddle, &p.Paddle},
		{"colors.ball", c.Colors.Ball, &p.Ball},
		{"colors.text", c.Colors.Text, &p.Text},
	} {
		cc, err := colorful.Hex(f.hex)
		if err != nil {
			return p, errors.Wrapf(err, "%s", f.key)
		}
		r, g, b := cc.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}

// MustPalette is Palette for configs that already passed Validate.
func (c *Config) MustPalette() Palette {
	p, err := c.Palette()
	if err != nil {
		panic(err)
	}
	return p
}

// Viewport is the configured window size.
func (c *Config) Viewport() Size {
	return Size{W: float64(c.Window.Width), H: float64(c.Window.Height)}
}
