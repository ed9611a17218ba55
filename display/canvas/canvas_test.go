package canvas

import (
	"bytes"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/jtestard/pong-duel/pong"
)

func rgba(t *testing.T, c *Canvas, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(c.Image().At(x, y)).(color.RGBA)
}

func TestServeScript(t *testing.T) {
	s := Serve(10)
	for frame, want := range map[int]bool{0: true, 1: false, 9: false, 10: true, 20: true} {
		if got := s(frame, pong.Start); got != want {
			t.Errorf("frame %d: Start = %v, want %v", frame, got, want)
		}
	}
	if s(0, pong.LeftUp) {
		t.Error("Serve must only touch Start")
	}
	if !Serve(0)(0, pong.Start) || Serve(0)(5, pong.Start) {
		t.Error("Serve(0) taps Start once")
	}
}

func TestCanvasTitleScreen(t *testing.T) {
	cfg := pong.DefaultConfig()
	c, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	shell := pong.NewShell(cfg)

	c.Run(shell, 5)

	if c.Frames() != 5 {
		t.Errorf("frames = %d, want 5", c.Frames())
	}
	if shell.Mode() != pong.Idle {
		t.Errorf("mode = %v without input", shell.Mode())
	}
	if px := rgba(t, c, 10, 10); px.R != 0 || px.G != 0 || px.B != 0 {
		t.Errorf("background pixel = %v, want black", px)
	}
}

func TestCanvasRendersMatch(t *testing.T) {
	cfg := pong.DefaultConfig()
	c, err := New(cfg, Serve(0))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	shell := pong.NewShell(cfg)

	c.Run(shell, 30)

	m := shell.Match()
	if m == nil || m.Phase() != pong.RoundActive {
		t.Fatal("match not running after the serve")
	}
	if m.Ball.Position.X <= 400 {
		t.Errorf("ball did not advance: %+v", m.Ball.Position)
	}

	if px := rgba(t, c, 10, 300); px.R < 250 || px.G < 250 || px.B < 250 {
		t.Errorf("left paddle pixel = %v, want white", px)
	}
	if px := rgba(t, c, 790, 300); px.R < 250 {
		t.Errorf("right paddle pixel = %v, want white", px)
	}
	bx, by := int(m.Ball.Position.X), int(m.Ball.Position.Y)
	if px := rgba(t, c, bx, by); px.B < 200 || px.R > 40 {
		t.Errorf("ball pixel at (%d,%d) = %v, want blue", bx, by, px)
	}
	if px := rgba(t, c, 200, 120); px.R != 0 || px.B != 0 {
		t.Errorf("empty court pixel = %v, want background", px)
	}
}

func TestCanvasSavePNG(t *testing.T) {
	cfg := pong.DefaultConfig()
	c, err := New(cfg, Serve(0))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Run(pong.NewShell(cfg), 3)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestLogFillReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	logFill("rect", nil)
	if buf.Len() != 0 {
		t.Errorf("nil error logged %q", buf.String())
	}
	logFill("circle", errors.New("rasterizer busy"))
	if out := buf.String(); !strings.Contains(out, "fill circle: rasterizer busy") {
		t.Errorf("log = %q", out)
	}
}
