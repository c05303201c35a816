package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/matview/internal/logger"
	"github.com/Faultbox/matview/internal/material"
	"github.com/Faultbox/matview/internal/preset"
	"github.com/Faultbox/matview/internal/viewer"
)

const statusDuration = 4 * time.Second

// dialogResult is a file chosen in a native dialog, handed to the render
// thread.
type dialogResult struct {
	path string
	save bool
}

// Panel is the material debug panel.
type Panel struct {
	viewer  *viewer.Viewer
	Visible bool

	dialogs     chan dialogResult
	dialogOpen  bool
	status      string
	statusError bool
	statusUntil time.Time

	log *zap.Logger
}

// NewPanel creates a visible panel driving v.
func NewPanel(v *viewer.Viewer) *Panel {
	return &Panel{
		viewer:  v,
		Visible: true,
		dialogs: make(chan dialogResult, 1),
		log:     logger.Named("panel"),
	}
}

// Render draws the panel and applies any edits to the shared material.
func (p *Panel) Render(screenWidth float32) {
	p.drainDialogs()
	if !p.Visible {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(screenWidth-330, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 0), imgui.CondFirstUseEver)

	if imgui.BeginV("Material", &p.Visible, imgui.WindowFlagsAlwaysAutoResize) {
		p.renderKindCombo()
		imgui.Separator()

		for _, c := range material.Controls(p.viewer.Material().Kind()) {
			p.renderControl(c)
		}

		imgui.Spacing()
		if imgui.CollapsingHeaderTreeNodeFlagsV("Actions", imgui.TreeNodeFlagsDefaultOpen) {
			p.renderActions()
		}
		p.renderStatus()
	}
	imgui.End()
}

func (p *Panel) renderKindCombo() {
	current := p.viewer.Material().Kind()
	imgui.SetNextItemWidth(-1)
	if imgui.BeginCombo("##material", current.Label()) {
		for _, k := range material.Kinds() {
			selected := k == current
			if imgui.SelectableBoolV(k.Label(), selected, 0, imgui.NewVec2(0, 0)) && !selected {
				p.viewer.SetKind(k)
			}
			if selected {
				imgui.SetItemDefaultFocus()
			}
		}
		imgui.EndCombo()
	}
}

func (p *Panel) renderControl(c material.Control) {
	params := p.viewer.Params()
	changed := false

	switch c.Widget {
	case material.WidgetSlider:
		if f := params.FloatField(c.Prop); f != nil {
			format := "%.3f"
			if c.Prop == material.PropShininess {
				format = "%.1f"
			}
			changed = imgui.SliderFloatV(c.Label, f, c.Range.Min, c.Range.Max, format, imgui.SliderFlagsAlwaysClamp)
		}
	case material.WidgetCheckbox:
		if b := params.FlagField(c.Prop); b != nil {
			changed = imgui.Checkbox(c.Label, b)
		}
	case material.WidgetColor:
		if col := params.ColorField(c.Prop); col != nil {
			rgb := col.RGB()
			if imgui.ColorEdit3V(c.Label, &rgb, imgui.ColorEditFlagsNone) {
				*col = material.ColorFromRGB(rgb)
				changed = true
			}
		}
	case material.WidgetSide:
		changed = p.renderSideCombo(c.Label, &params.Side)
	}

	if changed {
		p.viewer.Apply(c.Prop)
	}
}

func (p *Panel) renderSideCombo(label string, side *material.Side) bool {
	changed := false
	if imgui.BeginCombo(label, side.String()) {
		for _, s := range material.Sides() {
			if imgui.SelectableBoolV(s.String(), s == *side, 0, imgui.NewVec2(0, 0)) && s != *side {
				*side = s
				changed = true
			}
		}
		imgui.EndCombo()
	}
	return changed
}

func (p *Panel) renderActions() {
	if imgui.ButtonV("Save Preset", imgui.NewVec2(150, 0)) {
		p.openDialog(true)
	}
	imgui.SameLine()
	if imgui.ButtonV("Load Preset", imgui.NewVec2(150, 0)) {
		p.openDialog(false)
	}

	if imgui.ButtonV("Screenshot", imgui.NewVec2(150, 0)) {
		if path, err := p.viewer.Screenshot(); err != nil {
			p.setStatus(fmt.Sprintf("Screenshot failed: %v", err), true)
		} else {
			p.setStatus("Saved "+path, false)
		}
	}
	imgui.SameLine()
	if imgui.ButtonV("Export glTF", imgui.NewVec2(150, 0)) {
		if path, err := p.viewer.Export(""); err != nil {
			p.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		} else {
			p.setStatus("Exported "+path, false)
		}
	}

	if imgui.ButtonV("Reset Camera", imgui.NewVec2(-1, 0)) {
		p.viewer.ResetCamera()
	}
}

// openDialog shows a native file dialog in a goroutine so the frame loop
// keeps running; the choice is applied by drainDialogs on the render thread.
func (p *Panel) openDialog(save bool) {
	if p.dialogOpen {
		return
	}
	p.dialogOpen = true

	go func() {
		builder := dialog.File().
			Filter("YAML Preset", preset.Extension, "yml").
			Filter("All Files", "*")

		var path string
		var err error
		if save {
			path, err = builder.Title("Save Preset").SetStartFile(viewer.DefaultPresetPath).Save()
		} else {
			path, err = builder.Title("Load Preset").Load()
		}
		if err != nil {
			if err != dialog.ErrCancelled {
				p.log.Warn("file dialog failed", zap.Error(err))
			}
			path = ""
		}
		p.dialogs <- dialogResult{path: path, save: save}
	}()
}

func (p *Panel) drainDialogs() {
	select {
	case res := <-p.dialogs:
		p.dialogOpen = false
		if res.path == "" {
			return
		}
		if res.save {
			if err := p.viewer.SavePreset(res.path); err != nil {
				p.setStatus(fmt.Sprintf("Save failed: %v", err), true)
				return
			}
			p.setStatus("Saved "+res.path, false)
			return
		}
		if err := p.viewer.LoadPreset(res.path); err != nil {
			p.setStatus(fmt.Sprintf("Load failed: %v", err), true)
			return
		}
		p.setStatus("Loaded "+res.path, false)
	default:
	}
}

func (p *Panel) setStatus(msg string, isError bool) {
	p.status = msg
	p.statusError = isError
	p.statusUntil = time.Now().Add(statusDuration)
}

func (p *Panel) renderStatus() {
	if p.status == "" || time.Now().After(p.statusUntil) {
		return
	}
	imgui.Separator()
	if p.statusError {
		imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.4, 1.0), p.status)
	} else {
		imgui.TextWrapped(p.status)
	}
}
