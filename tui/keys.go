package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"taskdash/internal/infrastructure/config"
)

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	NextTab        key.Binding
	FilterStatus   key.Binding
	FilterPriority key.Binding
	ClearStatus    key.Binding
	ClearPriority  key.Binding
	SortStart      key.Binding
	SortEnd        key.Binding
	Add            key.Binding
	Edit           key.Binding
	Delete         key.Binding
	Refresh        key.Binding
	Quit           key.Binding
}

var keys keyMap

func init() {
	cfg, err := config.DefaultConfig()
	if err != nil {
		cfg = &config.Config{}
	}
	InitKeybindings(cfg)
}

// InitKeybindings builds the key map from config. It is called again when
// the config file changes.
func InitKeybindings(cfg *config.Config) {
	kb := cfg.Keybindings
	keys = keyMap{
		Up:             binding(kb.Up, "up"),
		Down:           binding(kb.Down, "down"),
		NextTab:        binding(kb.NextTab, "switch tab"),
		FilterStatus:   binding(kb.FilterStatus, "status filter"),
		FilterPriority: binding(kb.FilterPriority, "priority filter"),
		ClearStatus:    binding(kb.ClearStatus, "clear status"),
		ClearPriority:  binding(kb.ClearPriority, "clear priority"),
		SortStart:      binding(kb.SortStart, "sort start"),
		SortEnd:        binding(kb.SortEnd, "sort end"),
		Add:            binding(kb.Add, "add"),
		Edit:           binding(kb.Edit, "edit"),
		Delete:         binding(kb.Delete, "delete"),
		Refresh:        binding(kb.Refresh, "refresh"),
		Quit:           binding(kb.Quit, "quit"),
	}
}

func binding(keysFor []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keysFor...),
		key.WithHelp(strings.Join(keysFor, "/"), desc),
	)
}

// helpLine renders the bindings for the given tab
func helpLine(tab tabID) string {
	bindings := []key.Binding{keys.NextTab, keys.Refresh}
	if tab == tabTasks {
		bindings = append(bindings,
			keys.FilterStatus, keys.FilterPriority, keys.ClearStatus, keys.ClearPriority,
			keys.SortStart, keys.SortEnd, keys.Add, keys.Edit, keys.Delete,
		)
	}
	bindings = append(bindings, keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
