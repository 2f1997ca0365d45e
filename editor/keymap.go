package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/flouris/caret"
	"github.com/iw2rmb/flouris/dom"
)

// ModifySpec is the action a default key binding resolves to: a Modify
// call, or the select-all composite (SelectAll set, everything else
// ignored).
type ModifySpec struct {
	Kind      caret.ModifyKind
	Dir       dom.Direction
	Unit      caret.Unit
	SelectAll bool
}

// Binding pairs one key.Binding with the ModifySpec it triggers.
type Binding struct {
	Key  key.Binding
	Spec ModifySpec
}

// KeyMap is the default key binding suggestion for an external event
// binder, as a flat table of bindings to the actions they trigger. It is
// data, not behavior — the core never reads a KeyMap itself. A host
// ranges over the table calling key.Matches(msg, b.Key) and, on a match,
// passes b.Spec to Dispatch.
type KeyMap []Binding

// DefaultKeyMap returns the default key binding suggestion as a KeyMap.
// Plain arrow keys move, Shift+arrow extends, Home/End and their Ctrl
// equivalents move to the line boundary, Ctrl+Up/Down move to the document
// boundary, and Ctrl+A is select-all. Shift is added to each movement
// binding's Home/End/Ctrl+arrow counterpart for the matching extend.
func DefaultKeyMap() KeyMap {
	move := func(keys, help string, dir dom.Direction, unit caret.Unit) Binding {
		return Binding{
			Key:  key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help)),
			Spec: ModifySpec{Kind: caret.ModifyMove, Dir: dir, Unit: unit},
		}
	}
	extend := func(keys, help string, dir dom.Direction, unit caret.Unit) Binding {
		return Binding{
			Key:  key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help)),
			Spec: ModifySpec{Kind: caret.ModifyExtend, Dir: dir, Unit: unit},
		}
	}

	return KeyMap{
		move("right", "move right", dom.Forward, caret.UnitCharacter),
		move("left", "move left", dom.Backward, caret.UnitCharacter),
		extend("shift+right", "extend right", dom.Forward, caret.UnitCharacter),
		extend("shift+left", "extend left", dom.Backward, caret.UnitCharacter),

		move("down", "move down a line", dom.Forward, caret.UnitLine),
		move("up", "move up a line", dom.Backward, caret.UnitLine),
		extend("shift+down", "extend down a line", dom.Forward, caret.UnitLine),
		extend("shift+up", "extend up a line", dom.Backward, caret.UnitLine),

		move("home", "move to line start", dom.Backward, caret.UnitLineBoundary),
		move("end", "move to line end", dom.Forward, caret.UnitLineBoundary),
		move("ctrl+left", "move to line start", dom.Backward, caret.UnitLineBoundary),
		move("ctrl+right", "move to line end", dom.Forward, caret.UnitLineBoundary),
		extend("shift+home", "extend to line start", dom.Backward, caret.UnitLineBoundary),
		extend("shift+end", "extend to line end", dom.Forward, caret.UnitLineBoundary),
		extend("ctrl+shift+left", "extend to line start", dom.Backward, caret.UnitLineBoundary),
		extend("ctrl+shift+right", "extend to line end", dom.Forward, caret.UnitLineBoundary),

		move("ctrl+up", "move to document start", dom.Backward, caret.UnitDocumentBoundary),
		move("ctrl+down", "move to document end", dom.Forward, caret.UnitDocumentBoundary),
		extend("ctrl+shift+up", "extend to document start", dom.Backward, caret.UnitDocumentBoundary),
		extend("ctrl+shift+down", "extend to document end", dom.Forward, caret.UnitDocumentBoundary),

		{
			Key:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
			Spec: ModifySpec{SelectAll: true},
		},
	}
}

// Match returns the ModifySpec of km's first binding for which matches
// reports true, and ok=false if none does.
func (km KeyMap) Match(matches func(key.Binding) bool) (ModifySpec, bool) {
	for _, b := range km {
		if matches(b.Key) {
			return b.Spec, true
		}
	}
	return ModifySpec{}, false
}

// Dispatch applies spec to h's current selection, per the default key
// binding suggestion's policy: a plain Move on a non-collapsed selection
// with unit==character first collapses to the relevant edge instead of
// moving, matching the table's "short-circuit" note; select-all extends a
// documentboundary move from both ends.
func Dispatch(h *Handle, spec ModifySpec) {
	if h == nil || !h.attached {
		return
	}
	if spec.SelectAll {
		h.Modify(caret.ModifyMove, dom.Backward, caret.UnitDocumentBoundary)
		h.Modify(caret.ModifyExtend, dom.Forward, caret.UnitDocumentBoundary)
		return
	}
	if spec.Kind == caret.ModifyMove && spec.Unit == caret.UnitCharacter && !h.sel.IsCollapsed() {
		if spec.Dir == dom.Forward {
			h.CollapseToEnd()
		} else {
			h.CollapseToStart()
		}
		return
	}
	h.Modify(spec.Kind, spec.Dir, spec.Unit)
}
