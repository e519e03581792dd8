package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lmittmann/tint"

	"github.com/ha1tch/simpleedit/bitmap"
	"github.com/ha1tch/simpleedit/toolbox"
	"github.com/ha1tch/simpleedit/viewport"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fontSize     = 10
	menuHeight   = 24
	toolboxWidth = 40
	rightPanel   = 200
	bottomPanel  = 40
	toolSize     = 40
	barSize      = 6

	canvasX      = toolboxWidth
	canvasY      = menuHeight
	canvasWidth  = screenWidth - toolboxWidth - rightPanel
	canvasHeight = screenHeight - menuHeight - bottomPanel

	defaultStep = 20
)

var (
	colorWindow    = rl.Color{0x23, 0x23, 0x23, 255}
	colorMenu      = rl.Color{0x1B, 0x1B, 0x1B, 255}
	colorSeparator = rl.Color{0x30, 0x30, 0x30, 255}
	colorHover     = rl.Color{0x1E, 0x1E, 0x1E, 255}
	colorChecked   = rl.Color{0x00, 0x85, 0xFF, 255}
	colorBar       = rl.Color{0x55, 0x55, 0x55, 255}
)

var menuItems = []string{"File", "Edit", "About"}

// ToggleButton is a toolbox button carrying its own on/off state.
type ToggleButton struct {
	rect   rl.Rectangle
	tool   toolbox.Tool
	active bool
	hover  bool
}

// App is the application state handed to the frame loop.
type App struct {
	log *slog.Logger

	view    *viewport.Transform
	texture rl.Texture2D
	hbar    *viewport.ScrollBar
	vbar    *viewport.ScrollBar

	tools   toolbox.Selector
	buttons []ToggleButton
}

// NewApp builds the window state around an already loaded source image.
// It must be called after rl.InitWindow.
func NewApp(src *bitmap.Bitmap, step float64, log *slog.Logger) *App {
	app := &App{
		log:  log,
		view: viewport.New(src),
		hbar: viewport.NewScrollBar(step),
		vbar: viewport.NewScrollBar(step),
	}
	app.setDisplayed(src)

	for i, t := range toolbox.Tools() {
		app.buttons = append(app.buttons, ToggleButton{
			rect: rl.Rectangle{X: 0, Y: float32(canvasY + i*toolSize), Width: toolSize, Height: toolSize},
			tool: t,
		})
	}
	return app
}

// setDisplayed swaps the canvas texture for bm and refits the scroll ranges.
// The previous texture is released.
func (app *App) setDisplayed(bm *bitmap.Bitmap) {
	img := rl.NewImageFromImage(bm.Image())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if app.texture.ID != 0 {
		rl.UnloadTexture(app.texture)
	}
	app.texture = tex

	app.hbar.SetRange(float64(bm.Width()), canvasWidth)
	app.vbar.SetRange(float64(bm.Height()), canvasHeight)
}

// Toggle feeds a button state change into the selector and switches off
// whatever buttons it reports.
func (app *App) Toggle(i int, active bool) {
	btn := &app.buttons[i]
	btn.active = active
	for _, off := range app.tools.Toggle(btn.tool, active) {
		app.buttons[off].active = false
		app.tools.Toggle(off, false)
	}
	if t, ok := app.tools.Active(); ok {
		app.log.Debug("tool selected", "tool", t)
	} else {
		app.log.Debug("no tool selected")
	}
}

// Scroll handles one wheel event over the canvas.
func (app *App) Scroll(g viewport.Gesture) {
	before := app.view.Displayed()
	rest, err := app.view.Handle(g, app.hbar)
	if err != nil {
		app.log.Warn("zoom rejected", "factor", app.view.Factor(), "err", err)
		return
	}
	if bm := app.view.Displayed(); bm != before {
		app.setDisplayed(bm)
		app.log.Debug("zoom", "factor", app.view.Factor(), "width", bm.Width(), "height", bm.Height())
	}
	if rest.DeltaY != 0 {
		app.vbar.Scroll(rest.DeltaY)
	}
}

func modifiers() viewport.Modifiers {
	var m viewport.Modifiers
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= viewport.ModPan
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= viewport.ModZoom
	}
	return m
}

// Update application
func (app *App) Update() {
	mousePos := rl.GetMousePosition()
	canvas := rl.Rectangle{X: canvasX, Y: canvasY, Width: canvasWidth, Height: canvasHeight}

	// raylib reports wheel-up as positive; gestures use scroll-down positive
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && rl.CheckCollisionPointRec(mousePos, canvas) {
		app.Scroll(viewport.Gesture{DeltaY: -float64(wheel), Modifiers: modifiers()})
	}

	for i := range app.buttons {
		btn := &app.buttons[i]
		btn.hover = rl.CheckCollisionPointRec(mousePos, btn.rect)
		if btn.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.Toggle(i, !btn.active)
		}
	}
}

// imageOrigin places the texture inside the canvas, centred when smaller
// than the view and offset by the scroll bars otherwise.
func (app *App) imageOrigin() (int32, int32) {
	x := int32(canvasX) - int32(app.hbar.Value)
	if w := app.texture.Width; w < canvasWidth {
		x = canvasX + (canvasWidth-w)/2
	}
	y := int32(canvasY) - int32(app.vbar.Value)
	if h := app.texture.Height; h < canvasHeight {
		y = canvasY + (canvasHeight-h)/2
	}
	return x, y
}

func drawScrollBars(h, v *viewport.ScrollBar, contentW, contentH int32) {
	if h.Upper > 0 {
		w := float32(canvasWidth) * canvasWidth / float32(contentW)
		x := float32(canvasX) + float32(h.Value/h.Upper)*(canvasWidth-w)
		rl.DrawRectangleRec(rl.Rectangle{X: x, Y: canvasY + canvasHeight - barSize, Width: w, Height: barSize}, colorBar)
	}
	if v.Upper > 0 {
		hgt := float32(canvasHeight) * canvasHeight / float32(contentH)
		y := float32(canvasY) + float32(v.Value/v.Upper)*(canvasHeight-hgt)
		rl.DrawRectangleRec(rl.Rectangle{X: canvasX + canvasWidth - barSize, Y: y, Width: barSize, Height: hgt}, colorBar)
	}
}

// Draw application
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorWindow)

	mousePos := rl.GetMousePosition()

	// Canvas
	rl.BeginScissorMode(canvasX, canvasY, canvasWidth, canvasHeight)
	x, y := app.imageOrigin()
	rl.DrawTexture(app.texture, x, y, rl.White)
	drawScrollBars(app.hbar, app.vbar, app.texture.Width, app.texture.Height)
	rl.EndScissorMode()

	// Menu bar
	rl.DrawRectangle(0, 0, screenWidth, menuHeight, colorMenu)
	mx := int32(8)
	for _, item := range menuItems {
		rl.DrawText(item, mx, (menuHeight-fontSize)/2, fontSize, rl.White)
		mx += rl.MeasureText(item, fontSize) + 16
	}

	// Toolbox
	rl.DrawRectangle(0, canvasY, toolboxWidth, canvasHeight, colorWindow)
	rl.DrawLine(toolboxWidth, canvasY, toolboxWidth, canvasY+canvasHeight, colorSeparator)
	for _, btn := range app.buttons {
		if btn.active {
			rl.DrawRectangleRec(btn.rect, colorChecked)
		} else if btn.hover {
			rl.DrawRectangleRec(btn.rect, colorHover)
		}
		label := btn.tool.String()[:1]
		textX := int32(btn.rect.X+btn.rect.Width/2) - rl.MeasureText(label, fontSize)/2
		textY := int32(btn.rect.Y+btn.rect.Height/2) - fontSize/2
		rl.DrawText(label, textX, textY, fontSize, rl.White)

		if btn.hover {
			rl.DrawText(btn.tool.String(), int32(mousePos.X+10), int32(mousePos.Y), fontSize, rl.Yellow)
		}
	}

	// Right panel
	rx := int32(screenWidth - rightPanel)
	rl.DrawRectangle(rx, canvasY, rightPanel, canvasHeight, colorWindow)
	rl.DrawLine(rx, canvasY, rx, canvasY+canvasHeight, colorSeparator)

	// Bottom panel
	by := int32(screenHeight - bottomPanel)
	rl.DrawRectangle(0, by, screenWidth, bottomPanel, colorWindow)
	rl.DrawLine(0, by, screenWidth, by, colorSeparator)
	tool := "NONE"
	if t, ok := app.tools.Active(); ok {
		tool = t.String()
	}
	src := app.view.Original()
	info := fmt.Sprintf("ZOOM: %.0f%% | SIZE: %dX%d | TOOL: %s",
		app.view.Factor()*100, src.Width(), src.Height(), tool)
	rl.DrawText(info, 10, by+(bottomPanel-fontSize)/2, fontSize, rl.LightGray)

	rl.EndDrawing()
}

func main() {
	imagePath := flag.String("image", "", "image to open instead of the bundled one")
	step := flag.Float64("step", defaultStep, "horizontal scroll step increment in pixels")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))

	src, name, err := loadImage(*imagePath)
	if err != nil {
		log.Error("cannot load image", "err", err)
		os.Exit(1)
	}
	log.Info("image loaded", "source", name, "width", src.Width(), "height", src.Height())

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(screenWidth, screenHeight, "Simple Image Editor")
	rl.SetTargetFPS(60)

	app := NewApp(src, *step, log)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}

	// Clean up
	rl.UnloadTexture(app.texture)
	rl.CloseWindow()
}
