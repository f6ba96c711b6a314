package sketchpad

// Toolbar group names.
const (
	GroupModes   = "modes"
	GroupStyles  = "styles"
	GroupActions = "actions"
)

// Action keys dispatched by Widget.Action.
const (
	ActionUndo     = "undo"
	ActionRedo     = "redo"
	ActionClearAll = "clearAll"
)

// Button describes a toolbar control. Input buttons carry a companion input
// element keyed "<key>-input".
type Button struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	TitleKey string `json:"titleKey"`
	Icon     string `json:"icon"`
	Input    bool   `json:"input,omitempty"`
}

// ButtonGroup is one toolbar section.
type ButtonGroup struct {
	Name    string   `json:"name"`
	Buttons []Button `json:"buttons"`
}

// InputKey is the key of the input element paired with an input button.
func (b Button) InputKey() string {
	return b.Key + "-input"
}

var (
	styleButtons = []Button{
		{Key: StyleStroke, Title: "Stroke color", TitleKey: "sketchpad.stroke", Icon: "paint-brush"},
		{Key: StyleFill, Title: "Fill color", TitleKey: "sketchpad.fill", Icon: "tint"},
		{Key: StyleLineWidth, Title: "Line width", TitleKey: "sketchpad.lineWidth", Icon: "minus", Input: true},
		{Key: StyleCircleSize, Title: "Circle size", TitleKey: "sketchpad.circleSize", Icon: "circle", Input: true},
	}
	actionButtons = []Button{
		{Key: ActionUndo, Title: "Undo", TitleKey: "sketchpad.undo", Icon: "undo"},
		{Key: ActionRedo, Title: "Redo", TitleKey: "sketchpad.redo", Icon: "repeat"},
		{Key: ActionClearAll, Title: "Clear all", TitleKey: "sketchpad.clearAll", Icon: "trash"},
	}
)

// Toolbar returns the mode, style and action button groups for a registry.
func Toolbar(registry *Registry) []ButtonGroup {
	var modes []Button
	if registry != nil {
		modes = registry.Buttons()
	}
	return []ButtonGroup{
		{Name: GroupModes, Buttons: modes},
		{Name: GroupStyles, Buttons: append([]Button(nil), styleButtons...)},
		{Name: GroupActions, Buttons: append([]Button(nil), actionButtons...)},
	}
}
