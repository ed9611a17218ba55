// Package window runs the game in a desktop window on ebiten.
package window

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font"

	"github.com/jtestard/pong-duel/display"
	"github.com/jtestard/pong-duel/pong"
)

var keys = [pong.NumControls]ebiten.Key{
	pong.LeftUp:    ebiten.KeyW,
	pong.LeftDown:  ebiten.KeyS,
	pong.RightUp:   ebiten.KeyUp,
	pong.RightDown: ebiten.KeyDown,
	pong.Start:     ebiten.KeySpace,
}

// Window is the ebiten game. It is both the InputSampler and the Surface the
// shell ticks against.
type Window struct {
	cfg   pong.Config
	shell *pong.Shell
	clock *display.Clock
	debug bool

	screen *ebiten.Image
	font   *truetype.Font
	faces  map[float64]font.Face
	balls  map[ballKey]*ebiten.Image
}

type ballKey struct {
	radius float64
	color  color.RGBA
}

// New creates a window over shell. cfg must be valid.
func New(cfg pong.Config, shell *pong.Shell, debug bool) (*Window, error) {
	tt, err := truetype.Parse(fonts.ArcadeN_ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	return &Window{
		cfg:   cfg,
		shell: shell,
		clock: display.NewClock(nil),
		debug: debug,
		font:  tt,
		faces: make(map[float64]font.Face),
		balls: make(map[ballKey]*ebiten.Image),
	}, nil
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.cfg.Window.Width, w.cfg.Window.Height)
	ebiten.SetWindowTitle(w.cfg.Window.Title)
	ebiten.SetWindowResizable(w.cfg.Window.Resizable)
	return errors.Wrap(ebiten.RunGame(w), "run window")
}

// Update runs one tick of the shell
func (w *Window) Update(screen *ebiten.Image) error {
	w.screen = screen
	w.clock.Tick()
	w.shell.Tick(w, w)
	return nil
}

// Layout keeps the logical screen equal to the window so the viewport follows
// resizes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (w *Window) Held(c pong.Control) bool {
	return c < pong.NumControls && ebiten.IsKeyPressed(keys[c])
}

func (w *Window) Pressed(c pong.Control) bool {
	return c < pong.NumControls && inpututil.IsKeyJustPressed(keys[c])
}

func (w *Window) Viewport() pong.Size {
	if w.screen == nil {
		return w.cfg.Viewport()
	}
	width, height := w.screen.Size()
	return pong.Size{W: float64(width), H: float64(height)}
}

func (w *Window) Elapsed() float64 { return w.clock.Elapsed() }

func (w *Window) Clear(c color.Color) {
	w.screen.Fill(c)
}

func (w *Window) FillRect(r pong.Rect, c color.Color) {
	ebitenutil.DrawRect(w.screen, r.X, r.Y, r.W, r.H, c)
}

func (w *Window) FillCircle(center pong.Position, radius float64, c color.Color) {
	img, err := w.ball(radius, c)
	if err != nil {
		log.Printf("ball sprite: %v", err)
		ebitenutil.DrawRect(w.screen, center.X-radius, center.Y-radius, radius*2, radius*2, c)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(center.X-radius, center.Y-radius)
	w.screen.DrawImage(img, op)
}

func (w *Window) Text(s string, at pong.Position, size float64, c color.Color) {
	text.Draw(w.screen, s, w.face(size), int(math.Round(at.X)), int(math.Round(at.Y)), c)
}

// Present draws the debug overlay. ebiten shows the frame once Update returns.
func (w *Window) Present() {
	if w.debug {
		ebitenutil.DebugPrint(w.screen, fmt.Sprintf("TPS: %0.2f", ebiten.CurrentTPS()))
	}
}

func (w *Window) face(size float64) font.Face {
	if f, ok := w.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(w.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	w.faces[size] = f
	return f
}

func (w *Window) ball(radius float64, c color.Color) (*ebiten.Image, error) {
	key := ballKey{radius: radius, color: color.RGBAModel.Convert(c).(color.RGBA)}
	if img, ok := w.balls[key]; ok {
		return img, nil
	}
	src, err := display.RasterCircle(radius, c)
	if err != nil {
		return nil, err
	}
	img, err := ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	if err != nil {
		return nil, errors.Wrap(err, "upload ball sprite")
	}
	w.balls[key] = img
	return img, nil
}
