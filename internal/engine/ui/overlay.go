package ui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/matview/internal/engine/frame"
)

// StatsOverlay renders frame rate and render statistics in a corner.
type StatsOverlay struct {
	fps frame.FPSCounter

	memStats      runtime.MemStats
	memUpdateTime time.Duration

	Enabled    bool
	ShowMemory bool
}

// NewStatsOverlay creates an overlay.
func NewStatsOverlay(enabled bool) *StatsOverlay {
	return &StatsOverlay{Enabled: enabled}
}

// Update records a frame that took dt.
func (o *StatsOverlay) Update(dt time.Duration) {
	o.fps.Tick(dt)

	o.memUpdateTime += dt
	if o.ShowMemory && o.memUpdateTime >= 2*time.Second {
		runtime.ReadMemStats(&o.memStats)
		o.memUpdateTime = 0
	}
}

// FPS returns the averaged frame rate.
func (o *StatsOverlay) FPS() float64 { return o.fps.FPS() }

// Render draws the overlay for the last frame's stats.
func (o *StatsOverlay) Render(stats frame.Stats, materialLabel string, vp frame.Viewport) {
	if !o.Enabled {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(220, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##StatsOverlay", nil, flags) {
		o.renderFPS()

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Material: %s", materialLabel))
		imgui.Text(fmt.Sprintf("Draw Calls: %d", stats.DrawCalls))
		imgui.Text(fmt.Sprintf("Triangles: %d", stats.Triangles))
		imgui.Text(fmt.Sprintf("Programs: %d  Textures: %d", stats.Programs, stats.Textures))

		w, h := vp.Drawable()
		imgui.TextDisabled(fmt.Sprintf("%dx%d @%.1fx", w, h, vp.Ratio()))

		if o.ShowMemory {
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Alloc: %s", formatBytes(int64(o.memStats.Alloc))))
			imgui.Text(fmt.Sprintf("Sys: %s", formatBytes(int64(o.memStats.Sys))))
			imgui.Text(fmt.Sprintf("GC: %d", o.memStats.NumGC))
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

func (o *StatsOverlay) renderFPS() {
	fps := o.fps.FPS()
	fpsColor := imgui.NewVec4(0.2, 1.0, 0.2, 1.0) // Green
	if fps < 30 {
		fpsColor = imgui.NewVec4(1.0, 0.2, 0.2, 1.0) // Red
	} else if fps < 60 {
		fpsColor = imgui.NewVec4(1.0, 1.0, 0.2, 1.0) // Yellow
	}

	imgui.TextColored(fpsColor, fmt.Sprintf("FPS: %.1f", fps))
	imgui.SameLine()
	ms := float64(o.fps.FrameTime()) / float64(time.Millisecond)
	imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", ms))
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
