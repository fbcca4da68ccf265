package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation: "y", "tab", "enter", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command in every mode, without a help entry.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDescForMode(k, cmd, "", nil)
}

// BindWithDesc registers a key with a description for the help view.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	} else {
		delete(r.descriptions, k)
	}
	if len(modes) > 0 {
		r.modeFilter[k] = modes
	} else {
		delete(r.modeFilter, k)
	}
}

// Lookup returns the command bound to k in mode, or nil.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	cmd, ok := r.bindings[k]
	if !ok || !r.appliesToMode(k, mode) {
		return nil
	}
	return cmd
}

// Hints returns described bindings for mode, keyed by key.
func (r *KeybindRegistry) Hints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil || !r.appliesToMode(k, mode) {
			continue
		}
		if d, ok := r.descriptions[k]; ok {
			out[k] = d
		}
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeyHandler dispatches key messages to the registry for the current mode.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was bound and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns bindings in registration order, filtered by mode.
// Keys sharing a description are merged into one entry ("q/ctrl+c").
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints(km.mode)
	if len(hints) == 0 {
		return nil
	}
	var descs []string
	keysByDesc := make(map[string][]string)
	for _, k := range km.registry.order {
		d, ok := hints[k]
		if !ok {
			continue
		}
		if _, seen := keysByDesc[d]; !seen {
			descs = append(descs, d)
		}
		keysByDesc[d] = append(keysByDesc[d], k)
	}
	bindings := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := keysByDesc[d]
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), d),
		))
	}
	return bindings
}

// FullHelp returns a single column with the short bindings, sorted by key.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	sorted := make([]key.Binding, len(short))
	copy(sorted, short)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Help().Key < sorted[j].Help().Key
	})
	return [][]key.Binding{sorted}
}
