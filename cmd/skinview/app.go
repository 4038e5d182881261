package main

import (
	"fmt"
	"time"

	"mc-skinview/internal/config"
	"mc-skinview/internal/graphics"
	"mc-skinview/internal/graphics/renderables/playermodel"
	"mc-skinview/internal/logger"
	"mc-skinview/internal/viewer"
	"mc-skinview/pkg/skin"
	"mc-skinview/pkg/skinmodel"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// App owns the window and everything drawn into it
type App struct {
	window *glfw.Window
	cfg    *config.Config
	log    *zap.Logger

	camera   *graphics.OrbitCamera
	model    *playermodel.PlayerModel
	controls viewer.Controls
	timeline viewer.Timeline

	fpsLimiter *viewer.FPSLimiter
	lastTime   time.Time

	// pendingSkin is set by the drop callback and consumed on the render thread
	pendingSkin string
}

func run(cfg *config.Config, s *skin.Skin) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("window setup: %w", err)
	}
	defer window.Destroy()

	app := &App{
		window:     window,
		cfg:        cfg,
		log:        logger.Named("viewer"),
		model:      playermodel.NewPlayerModel(),
		fpsLimiter: viewer.NewFPSLimiter(),
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	app.camera = graphics.NewOrbitCamera(fbWidth, fbHeight)
	app.camera.Pitch = cfg.View.Pitch
	app.camera.Distance = config.GetDistance()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	if err := app.model.Init(s); err != nil {
		return err
	}
	defer app.model.Dispose()

	app.bindInput()
	app.log.Info("viewer started",
		zap.String("skin", cfg.Skin.Path),
		zap.Stringer("model", s.Type),
		zap.Int("fps_limit", config.GetFPSLimit()),
	)

	app.lastTime = time.Now()
	for !window.ShouldClose() {
		app.tick()
	}
	return nil
}

func (a *App) bindInput() {
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		a.camera.SetViewport(width, height)
	})

	a.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		a.controls.MouseButton(action == glfw.Press, x, y)
	})

	a.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.controls.CursorMoved(x, y)
	})

	a.window.SetScrollCallback(func(_ *glfw.Window, _, dy float64) {
		a.camera.Distance = a.controls.Scroll(dy)
	})

	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			w.SetShouldClose(true)
		case glfw.KeyO:
			a.log.Debug("overlay toggled", zap.Bool("enabled", config.ToggleOverlay()))
		case glfw.KeyA:
			a.log.Debug("animation toggled", zap.Bool("enabled", config.ToggleAnimate()))
		case glfw.KeyR:
			a.timeline.Yaw = 0
			a.camera.Yaw, a.camera.Pitch = 0, a.cfg.View.Pitch
		case glfw.KeySpace:
			if config.GetRotateSpeed() != 0 {
				config.SetRotateSpeed(0)
			} else {
				config.SetRotateSpeed(a.cfg.View.RotateSpeed)
			}
		}
	})

	a.window.SetDropCallback(func(_ *glfw.Window, names []string) {
		if len(names) > 0 {
			a.pendingSkin = names[0]
		}
	})
}

func (a *App) tick() {
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	if a.pendingSkin != "" {
		a.swapSkin(a.pendingSkin)
		a.pendingSkin = ""
	}

	dYaw, dPitch := a.controls.TakeOrbit()
	a.camera.Orbit(dYaw, dPitch)
	a.timeline.Advance(dt, a.controls.Dragging())

	bg := a.cfg.View.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	pose := skinmodel.RestPose()
	if config.GetAnimate() {
		pose = skinmodel.IdlePose(a.timeline.AnimTime)
	}
	world := mgl32.HomogRotate3DY(mgl32.DegToRad(a.timeline.Yaw))
	a.model.Render(a.camera.GetViewMatrix(), a.camera.GetProjectionMatrix(), world, pose, config.GetOverlay())

	a.window.SwapBuffers()
	a.fpsLimiter.Wait(a.timeline.Idle(a.controls.Dragging()))
}

func (a *App) swapSkin(path string) {
	s, err := loadSkin(config.SkinConfig{Path: path, Model: a.cfg.Skin.Model})
	if err != nil {
		a.log.Warn("dropped file is not a usable skin", zap.String("path", path), zap.Error(err))
		return
	}
	if err := a.model.SetSkin(s); err != nil {
		a.log.Error("could not apply skin", zap.Error(err))
		return
	}
	a.log.Info("skin replaced", zap.String("path", path), zap.Stringer("model", s.Type))
}
