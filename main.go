package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/rix3l/canvas"
	"github.com/ha1tch/rix3l/scene"
)

const (
	targetFPS   = 60
	textSpacing = 1
	logLevelEnv = "RIX3L_LOG_LEVEL"
)

// Backend draws scene commands with raylib and feeds it mouse input
type Backend struct {
	font    rl.Font
	grid    rl.Texture2D
	gridRev uint64
	lastPos rl.Vector2
}

// Measure returns the size of text in the default raylib font
func (b *Backend) Measure(text string, size int) (float64, float64) {
	v := rl.MeasureTextEx(b.font, text, float32(size), textSpacing)
	return float64(v.X), float64(v.Y)
}

// Upload refreshes the grid texture when the grid changed since the last tick
func (b *Backend) Upload(g *canvas.Grid) {
	if g.Rev() == b.gridRev {
		return
	}
	rl.UpdateTexture(b.grid, g.Pixels())
	b.gridRev = g.Rev()
}

// Input collects this tick's mouse events
func (b *Backend) Input() canvas.Frame {
	var f canvas.Frame

	pos := rl.GetMousePosition()
	if pos != b.lastPos {
		f.Moved = &canvas.Point{X: float64(pos.X), Y: float64(pos.Y)}
		b.lastPos = pos
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		f.Button = &canvas.ButtonEvent{State: canvas.Pressed, Mouse: canvas.MouseLeft}
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		f.Button = &canvas.ButtonEvent{State: canvas.Released, Mouse: canvas.MouseLeft}
	case rl.IsMouseButtonPressed(rl.MouseButtonRight), rl.IsMouseButtonPressed(rl.MouseButtonMiddle):
		f.Button = &canvas.ButtonEvent{State: canvas.Pressed, Mouse: canvas.MouseOther}
	}
	return f
}

// Draw executes the commands in order
func (b *Backend) Draw(cmds []scene.Command) {
	rl.BeginDrawing()
	for _, cmd := range cmds {
		switch cmd.Kind {
		case scene.FilledRect:
			rl.DrawRectangleRec(toRect(cmd.Rect), cmd.Color)
		case scene.TexturedBlit:
			if cmd.Texture != scene.TextureGrid {
				continue
			}
			src := rl.Rectangle{Width: float32(b.grid.Width), Height: float32(b.grid.Height)}
			rl.DrawTexturePro(b.grid, src, toRect(cmd.Rect), rl.Vector2{}, 0, cmd.Color)
		case scene.TextBlit:
			pos := rl.Vector2{X: float32(cmd.Rect.Min.X), Y: float32(cmd.Rect.Min.Y)}
			rl.DrawTextEx(b.font, cmd.Text, pos, float32(cmd.FontSize), textSpacing, cmd.Color)
		}
	}
	rl.EndDrawing()
}

func toRect(r canvas.Rect) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(r.Min.X),
		Y:      float32(r.Min.Y),
		Width:  float32(r.Width()),
		Height: float32(r.Height()),
	}
}

func logLevel() slog.Level {
	var level slog.Level
	if v := os.Getenv(logLevelEnv); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	return level
}

func run() error {
	cfg := canvas.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), cfg.Title)
	if !rl.IsWindowReady() {
		return errors.New("window: raylib could not open a window")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	backend := &Backend{font: rl.GetFontDefault(), lastPos: rl.Vector2{X: -1, Y: -1}}
	app := canvas.New(cfg, canvas.NewSidebar(cfg, backend.Measure))

	img := rl.NewImageFromImage(app.Grid())
	backend.grid = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if backend.grid.ID == 0 {
		return errors.New("texture: could not upload canvas")
	}
	defer rl.UnloadTexture(backend.grid)
	rl.SetTextureFilter(backend.grid, rl.FilterPoint)
	backend.gridRev = app.Grid().Rev()

	slog.Info("window open", "title", cfg.Title, "side", cfg.SideLength,
		"cell", cfg.CellSize(), "offCanvas", cfg.OffCanvas)

	for !rl.WindowShouldClose() {
		app.Apply(backend.Input())
		backend.Upload(app.Grid())
		backend.Draw(scene.Build(app))
	}

	slog.Info("window closed")
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})))

	if err := run(); err != nil {
		slog.Error("rix3l: " + err.Error())
		os.Exit(1)
	}
}
