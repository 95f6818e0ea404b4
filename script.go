package picsel

import (
	"os"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Amount float64 `yaml:"amount,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level YAML structure of an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptKeys = map[string]Action{
	"reload":        ActionReload,
	"save":          ActionSave,
	"next":          ActionNext,
	"prev":          ActionPrev,
	"toggle_select": ActionToggleSelect,
	"apply_first":   ActionApplyFirst,
	"apply_second":  ActionApplySecond,
	"toggle_rings":  ActionToggleRings,
	"screenshot":    ActionScreenshot,
	"toggle_viewer": ActionToggleViewer,
	"order_up":      ActionOrderUp,
	"order_down":    ActionOrderDown,
	"radius_up":     ActionRadiusUp,
	"radius_down":   ActionRadiusDown,
	"duration_up":   ActionDurationUp,
	"duration_down": ActionDurationDown,
	"toggle_colors": ActionToggleColors,
	"next_seed":     ActionNextSeed,
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated runs. Attach to an App via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses a YAML input script:
//
//	steps:
//	  - action: doubleclick
//	    x: 400
//	    y: 300
//	  - action: key
//	    key: apply_second
//	  - action: wait
//	    frames: 90
//	  - action: screenshot
//	    label: hilbert
func ParseScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, wrapError(ErrCodeInvalidScript, err, "parse input script")
	}
	if len(s.Steps) == 0 {
		return nil, newError(ErrCodeInvalidScript, "parse input script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "doubleclick", "drag", "scroll", "move", "wait", "screenshot":
		case "key":
			if _, ok := scriptKeys[st.Key]; !ok {
				return nil, newError(ErrCodeInvalidScript, "step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, newError(ErrCodeInvalidScript, "step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScript reads and parses a YAML input script file.
func LoadScript(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrCodeIO, err, "read script %s", path)
	}
	return ParseScript(data)
}

// Done reports whether every step has been executed and its input consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame, queueing input into q and
// screenshot labels through shoot.
func (r *ScriptRunner) step(q *InputQueue, shoot func(label string)) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if q.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		shoot(st.Label)
	case "doubleclick":
		q.InjectDoubleClick(st.X, st.Y)
	case "move":
		q.InjectMove(st.X, st.Y)
	case "drag":
		q.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		amount := st.Amount
		if amount == 0 {
			amount = 1
		}
		q.InjectScroll(st.X, st.Y, amount)
	case "key":
		q.InjectActions(scriptKeys[st.Key])
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
