package taxonomy

import "slices"

// HandlerGroup names a group of DOM event handler attributes.
type HandlerGroup string

const (
	HandlersClipboard   HandlerGroup = "clipboard"
	HandlersComposition HandlerGroup = "composition"
	HandlersKeyboard    HandlerGroup = "keyboard"
	HandlersFocus       HandlerGroup = "focus"
	HandlersForm        HandlerGroup = "form"
	HandlersMouse       HandlerGroup = "mouse"
	HandlersSelection   HandlerGroup = "selection"
	HandlersTouch       HandlerGroup = "touch"
	HandlersUI          HandlerGroup = "ui"
	HandlersWheel       HandlerGroup = "wheel"
	HandlersMedia       HandlerGroup = "media"
	HandlersImage       HandlerGroup = "image"
	HandlersAnimation   HandlerGroup = "animation"
	HandlersTransition  HandlerGroup = "transition"
)

var handlerGroups = map[HandlerGroup][]string{
	HandlersClipboard:   {"onCopy", "onCut", "onPaste"},
	HandlersComposition: {"onCompositionEnd", "onCompositionStart", "onCompositionUpdate"},
	HandlersKeyboard:    {"onKeyDown", "onKeyPress", "onKeyUp"},
	HandlersFocus:       {"onFocus", "onBlur"},
	HandlersForm:        {"onChange", "onInput", "onSubmit"},
	HandlersMouse: {
		"onClick", "onContextMenu", "onDblClick", "onDoubleClick", "onDrag", "onDragEnd",
		"onDragEnter", "onDragExit", "onDragLeave", "onDragOver", "onDragStart", "onDrop",
		"onMouseDown", "onMouseEnter", "onMouseLeave", "onMouseMove", "onMouseOut",
		"onMouseOver", "onMouseUp",
	},
	HandlersSelection: {"onSelect"},
	HandlersTouch:     {"onTouchCancel", "onTouchEnd", "onTouchMove", "onTouchStart"},
	HandlersUI:        {"onScroll"},
	HandlersWheel:     {"onWheel"},
	HandlersMedia: {
		"onAbort", "onCanPlay", "onCanPlayThrough", "onDurationChange", "onEmptied",
		"onEncrypted", "onEnded", "onError", "onLoadedData", "onLoadedMetadata", "onLoadStart",
		"onPause", "onPlay", "onPlaying", "onProgress", "onRateChange", "onSeeked", "onSeeking",
		"onStalled", "onSuspend", "onTimeUpdate", "onVolumeChange", "onWaiting",
	},
	HandlersImage:      {"onLoad", "onError"},
	HandlersAnimation:  {"onAnimationStart", "onAnimationEnd", "onAnimationIteration"},
	HandlersTransition: {"onTransitionEnd"},
}

// Handlers returns handler attribute names of the given groups in group order.
func Handlers(groups ...HandlerGroup) []string {
	var res []string
	for _, g := range groups {
		res = append(res, handlerGroups[g]...)
	}
	return slices.Clone(res)
}
