package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/gcview"
)

var glfwToKey = map[glfw.Key]gcview.Key{
	glfw.KeyA:          gcview.KeyA,
	glfw.KeyB:          gcview.KeyB,
	glfw.KeyC:          gcview.KeyC,
	glfw.KeyD:          gcview.KeyD,
	glfw.KeyE:          gcview.KeyE,
	glfw.KeyF:          gcview.KeyF,
	glfw.KeyG:          gcview.KeyG,
	glfw.KeyH:          gcview.KeyH,
	glfw.KeyI:          gcview.KeyI,
	glfw.KeyJ:          gcview.KeyJ,
	glfw.KeyK:          gcview.KeyK,
	glfw.KeyL:          gcview.KeyL,
	glfw.KeyM:          gcview.KeyM,
	glfw.KeyN:          gcview.KeyN,
	glfw.KeyO:          gcview.KeyO,
	glfw.KeyP:          gcview.KeyP,
	glfw.KeyQ:          gcview.KeyQ,
	glfw.KeyR:          gcview.KeyR,
	glfw.KeyS:          gcview.KeyS,
	glfw.KeyT:          gcview.KeyT,
	glfw.KeyU:          gcview.KeyU,
	glfw.KeyV:          gcview.KeyV,
	glfw.KeyW:          gcview.KeyW,
	glfw.KeyX:          gcview.KeyX,
	glfw.KeyY:          gcview.KeyY,
	glfw.KeyZ:          gcview.KeyZ,
	glfw.KeySpace:      gcview.KeySpace,
	glfw.KeyEnter:      gcview.KeyEnter,
	glfw.KeyKPEnter:    gcview.KeyEnter,
	glfw.KeyEscape:     gcview.KeyEscape,
	glfw.KeyHome:       gcview.KeyHome,
	glfw.KeyEnd:        gcview.KeyEnd,
	glfw.KeyRight:      gcview.KeyRight,
	glfw.KeyLeft:       gcview.KeyLeft,
	glfw.KeyDown:       gcview.KeyDown,
	glfw.KeyUp:         gcview.KeyUp,
	glfw.KeyPageUp:     gcview.KeyPageUp,
	glfw.KeyPageDown:   gcview.KeyPageDown,
	glfw.KeyMinus:      gcview.KeyMinus,
	glfw.KeyEqual:      gcview.KeyEqual,
	glfw.KeyKPAdd:      gcview.KeyKPPlus,
	glfw.KeyKPSubtract: gcview.KeyKPMinus,
}

func translateKey(k glfw.Key) gcview.Key {
	return glfwToKey[k]
}

func translateMods(m glfw.ModifierKey) gcview.Modifier {
	var out gcview.Modifier
	if m&glfw.ModShift != 0 {
		out |= gcview.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= gcview.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= gcview.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= gcview.ModSuper
	}
	return out
}

func translateButton(b glfw.MouseButton) gcview.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return gcview.ButtonLeft
	case glfw.MouseButtonRight:
		return gcview.ButtonRight
	case glfw.MouseButtonMiddle:
		return gcview.ButtonMiddle
	}
	return gcview.ButtonNone
}
