package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/matview/internal/engine/frame"
)

// SceneView shows the offscreen scene as a fullscreen background window and
// turns mouse input over it into camera motion.
type SceneView struct {
	lastMousePos imgui.Vec2
	dragging     bool
}

// CameraInput receives orbit input.
type CameraInput interface {
	HandleDrag(dx, dy float32)
	HandleZoom(delta float32)
}

// Draw places textureID behind every other window. GL textures are
// bottom-up, so V is flipped.
func (s *SceneView) Draw(textureID uint32, vp frame.Viewport) {
	if textureID == 0 || vp.Empty() {
		return
	}
	w, h := float32(vp.Width), float32(vp.Height)

	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageWithBgV(
			*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1), // UV flipped
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)
	}
	imgui.End()
	imgui.PopStyleVar()
}

// HandleInput forwards drags and wheel motion that no panel claimed.
func (s *SceneView) HandleInput(cam CameraInput) {
	io := imgui.CurrentIO()
	mousePos := imgui.MousePos()

	if io.WantCaptureMouse() && !s.dragging {
		s.lastMousePos = mousePos
		return
	}

	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		if s.dragging {
			cam.HandleDrag(mousePos.X-s.lastMousePos.X, mousePos.Y-s.lastMousePos.Y)
		}
		s.dragging = true
	} else {
		s.dragging = false
	}
	s.lastMousePos = mousePos

	if wheel := io.MouseWheel(); wheel != 0 {
		cam.HandleZoom(wheel)
	}
}
