// Package toolbox tracks which editing tool is selected. At most one tool
// is active at a time and none is active initially.
package toolbox

// Tool types
type Tool int

const (
	ToolMove Tool = iota
	ToolCrop
	ToolPen
	ToolLine
	ToolShape

	numTools
)

var toolNames = [numTools]string{"MOVE", "CROP", "PEN", "LINE", "SHAPE"}

// Tools returns every tool in toolbox order.
func Tools() []Tool {
	tools := make([]Tool, numTools)
	for i := range tools {
		tools[i] = Tool(i)
	}
	return tools
}

func (t Tool) Valid() bool { return t >= 0 && t < numTools }

func (t Tool) String() string {
	if t.Valid() {
		return toolNames[t]
	}
	return "UNKNOWN"
}

// Selector holds the single active tool, if any.
type Selector struct {
	active Tool
	set    bool
}

// Active returns the active tool and whether there is one.
func (s *Selector) Active() (Tool, bool) {
	return s.active, s.set
}

func (s *Selector) IsActive(t Tool) bool {
	return s.set && s.active == t
}

// Toggle records that the button for t now reports active. It returns the
// tools whose buttons must be switched off to keep the selection
// exclusive. Deactivation reports never trigger a rescan; they only clear
// the selection when they come from the active tool itself.
func (s *Selector) Toggle(t Tool, active bool) []Tool {
	if !t.Valid() {
		return nil
	}
	if !active {
		if s.IsActive(t) {
			s.set = false
		}
		return nil
	}

	var off []Tool
	if s.set && s.active != t {
		off = append(off, s.active)
	}
	s.active, s.set = t, true
	return off
}
