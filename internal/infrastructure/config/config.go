package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"taskdash/pkg/filesystem"
)

const (
	defaultConfigFileName = "config.yml"
	defaultConfigDirName  = ".config/taskdash"
	defaultDataDirName    = ".local/share/taskdash"
	defaultBaseURL        = "http://localhost:4000"

	// EnvPrefix prefixes every environment override, e.g. TASKDASH_SERVER_BASE_URL
	EnvPrefix = "TASKDASH"
	// ConfigPathEnv overrides the config file location
	ConfigPathEnv = "TASKDASH_CONFIG"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Storage     StorageConfig     `yaml:"storage" mapstructure:"storage"`
	TUI         TUIConfig         `yaml:"tui" mapstructure:"tui"`
	Keybindings KeybindingsConfig `yaml:"keybindings" mapstructure:"keybindings"`
}

// ServerConfig holds the task store location
type ServerConfig struct {
	BaseURL        string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// StorageConfig holds local state locations
type StorageConfig struct {
	DataPath string `yaml:"data_path" mapstructure:"data_path"`
}

// TUIConfig holds TUI configuration
type TUIConfig struct {
	RefreshSeconds int          `yaml:"refresh_seconds" mapstructure:"refresh_seconds"`
	Styles         StylesConfig `yaml:"styles" mapstructure:"styles"`
}

// StylesConfig holds color and styling configuration
type StylesConfig struct {
	Tab         TextStyle      `yaml:"tab" mapstructure:"tab"`
	ActiveTab   TextStyle      `yaml:"active_tab" mapstructure:"active_tab"`
	Header      TextStyle      `yaml:"header" mapstructure:"header"`
	Row         TextStyle      `yaml:"row" mapstructure:"row"`
	SelectedRow TextStyle      `yaml:"selected_row" mapstructure:"selected_row"`
	Help        TextStyle      `yaml:"help" mapstructure:"help"`
	Card        PanelStyle     `yaml:"card" mapstructure:"card"`
	Form        PanelStyle     `yaml:"form" mapstructure:"form"`
	Error       TextStyle      `yaml:"error" mapstructure:"error"`
	Success     TextStyle      `yaml:"success" mapstructure:"success"`
	Priority    PriorityColors `yaml:"priority" mapstructure:"priority"`
	Status      StatusColors   `yaml:"status" mapstructure:"status"`
	Bars        BarColors      `yaml:"bars" mapstructure:"bars"`
}

// PanelStyle represents a bordered box
type PanelStyle struct {
	PaddingVertical   int    `yaml:"padding_vertical" mapstructure:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal" mapstructure:"padding_horizontal"`
	BorderStyle       string `yaml:"border_style" mapstructure:"border_style"`
	BorderColor       string `yaml:"border_color" mapstructure:"border_color"`
}

// TextStyle represents text styling
type TextStyle struct {
	Foreground        string `yaml:"foreground,omitempty" mapstructure:"foreground"`
	Background        string `yaml:"background,omitempty" mapstructure:"background"`
	Bold              bool   `yaml:"bold,omitempty" mapstructure:"bold"`
	Italic            bool   `yaml:"italic,omitempty" mapstructure:"italic"`
	PaddingVertical   int    `yaml:"padding_vertical,omitempty" mapstructure:"padding_vertical"`
	PaddingHorizontal int    `yaml:"padding_horizontal,omitempty" mapstructure:"padding_horizontal"`
	Align             string `yaml:"align,omitempty" mapstructure:"align"`
}

// PriorityColors holds colors for different priority levels
type PriorityColors struct {
	High    string `yaml:"high" mapstructure:"high"`
	Medium  string `yaml:"medium" mapstructure:"medium"`
	Low     string `yaml:"low" mapstructure:"low"`
	Default string `yaml:"default" mapstructure:"default"`
}

// StatusColors holds colors for each task status
type StatusColors struct {
	Pending    string `yaml:"pending" mapstructure:"pending"`
	InProgress string `yaml:"in_progress" mapstructure:"in_progress"`
	Completed  string `yaml:"completed" mapstructure:"completed"`
}

// BarColors holds the time analysis bar colors
type BarColors struct {
	Elapsed   string `yaml:"elapsed" mapstructure:"elapsed"`
	Remaining string `yaml:"remaining" mapstructure:"remaining"`
}

// KeybindingsConfig holds keybinding configuration
type KeybindingsConfig struct {
	Up             []string `yaml:"up" mapstructure:"up"`
	Down           []string `yaml:"down" mapstructure:"down"`
	NextTab        []string `yaml:"next_tab" mapstructure:"next_tab"`
	FilterStatus   []string `yaml:"filter_status" mapstructure:"filter_status"`
	FilterPriority []string `yaml:"filter_priority" mapstructure:"filter_priority"`
	ClearStatus    []string `yaml:"clear_status" mapstructure:"clear_status"`
	ClearPriority  []string `yaml:"clear_priority" mapstructure:"clear_priority"`
	SortStart      []string `yaml:"sort_start" mapstructure:"sort_start"`
	SortEnd        []string `yaml:"sort_end" mapstructure:"sort_end"`
	Add            []string `yaml:"add" mapstructure:"add"`
	Edit           []string `yaml:"edit" mapstructure:"edit"`
	Delete         []string `yaml:"delete" mapstructure:"delete"`
	Refresh        []string `yaml:"refresh" mapstructure:"refresh"`
	Quit           []string `yaml:"quit" mapstructure:"quit"`
}

// Loader handles loading and saving configuration
type Loader struct {
	configPath string
}

// NewLoader creates a config loader for the default location, honoring
// TASKDASH_CONFIG when it is set
func NewLoader() (*Loader, error) {
	if override := os.Getenv(ConfigPathEnv); override != "" {
		return NewLoaderWithPath(override)
	}

	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &Loader{
		configPath: filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName),
	}, nil
}

// NewLoaderWithPath creates a config loader for an explicit file
func NewLoaderWithPath(path string) (*Loader, error) {
	expanded, err := filesystem.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if expanded == "" {
		return nil, errors.New("config path is empty")
	}
	return &Loader{configPath: expanded}, nil
}

// Load loads the configuration, creating defaults if it doesn't exist.
// Environment variables override file values.
func (l *Loader) Load() (*Config, error) {
	exists, err := filesystem.Exists(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if !exists {
		if _, err := l.createDefaultConfig(); err != nil {
			return nil, err
		}
	}

	defaults, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(l.configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.base_url", defaults.Server.BaseURL)
	v.SetDefault("server.timeout_seconds", defaults.Server.TimeoutSeconds)
	v.SetDefault("storage.data_path", defaults.Storage.DataPath)
	v.SetDefault("tui.refresh_seconds", defaults.TUI.RefreshSeconds)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.fillDefaults(defaults)

	dataPath, err := filesystem.ExpandPath(config.Storage.DataPath)
	if err != nil {
		return nil, err
	}
	config.Storage.DataPath = dataPath
	config.Server.BaseURL = strings.TrimRight(config.Server.BaseURL, "/")

	return &config, nil
}

// Save persists the configuration to disk
func (l *Loader) Save(config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := filesystem.SafeWrite(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Init writes the default configuration, refusing to overwrite an existing
// file unless force is set
func (l *Loader) Init(force bool) (*Config, error) {
	exists, err := filesystem.Exists(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if exists && !force {
		return nil, fmt.Errorf("config file already exists: %s", l.configPath)
	}
	return l.createDefaultConfig()
}

// GetConfigPath returns the path to the config file
func (l *Loader) GetConfigPath() string {
	return l.configPath
}

// createDefaultConfig creates and saves a default configuration
func (l *Loader) createDefaultConfig() (*Config, error) {
	config, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	if err := l.Save(config); err != nil {
		return nil, err
	}

	return config, nil
}

// fillDefaults restores values a partial config file left unset
func (c *Config) fillDefaults(defaults *Config) {
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = defaults.Server.TimeoutSeconds
	}
	if c.TUI.RefreshSeconds < 0 {
		c.TUI.RefreshSeconds = 0
	}
	if c.TUI.Styles == (StylesConfig{}) {
		c.TUI.Styles = defaults.TUI.Styles
	}

	kb := &c.Keybindings
	def := defaults.Keybindings
	fill := func(target *[]string, fallback []string) {
		if len(*target) == 0 {
			*target = fallback
		}
	}
	fill(&kb.Up, def.Up)
	fill(&kb.Down, def.Down)
	fill(&kb.NextTab, def.NextTab)
	fill(&kb.FilterStatus, def.FilterStatus)
	fill(&kb.FilterPriority, def.FilterPriority)
	fill(&kb.ClearStatus, def.ClearStatus)
	fill(&kb.ClearPriority, def.ClearPriority)
	fill(&kb.SortStart, def.SortStart)
	fill(&kb.SortEnd, def.SortEnd)
	fill(&kb.Add, def.Add)
	fill(&kb.Edit, def.Edit)
	fill(&kb.Delete, def.Delete)
	fill(&kb.Refresh, def.Refresh)
	fill(&kb.Quit, def.Quit)
}

// DefaultConfig returns the configuration written on first run
func DefaultConfig() (*Config, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: 10,
		},
		Storage: StorageConfig{
			DataPath: filepath.Join(homeDir, defaultDataDirName),
		},
		TUI: TUIConfig{
			RefreshSeconds: 0,
			Styles: StylesConfig{
				Tab: TextStyle{
					Foreground:        "241",
					PaddingHorizontal: 2,
				},
				ActiveTab: TextStyle{
					Foreground:        "230",
					Background:        "62",
					Bold:              true,
					PaddingHorizontal: 2,
				},
				Header: TextStyle{
					Foreground: "99",
					Bold:       true,
				},
				Row: TextStyle{
					Foreground: "252",
				},
				SelectedRow: TextStyle{
					Foreground: "230",
					Background: "62",
					Bold:       true,
				},
				Help: TextStyle{
					Foreground:        "241",
					PaddingVertical:   1,
					PaddingHorizontal: 1,
				},
				Card: PanelStyle{
					PaddingVertical:   0,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "240",
				},
				Form: PanelStyle{
					PaddingVertical:   1,
					PaddingHorizontal: 2,
					BorderStyle:       "rounded",
					BorderColor:       "62",
				},
				Error: TextStyle{
					Foreground: "#FF6B6B",
					Bold:       true,
				},
				Success: TextStyle{
					Foreground: "#95E1D3",
				},
				Priority: PriorityColors{
					High:    "#FF6B6B",
					Medium:  "#FFE66D",
					Low:     "#95E1D3",
					Default: "#999999",
				},
				Status: StatusColors{
					Pending:    "#FFE66D",
					InProgress: "#A8DADC",
					Completed:  "#95E1D3",
				},
				Bars: BarColors{
					Elapsed:   "#FF6B6B",
					Remaining: "#A8DADC",
				},
			},
		},
		Keybindings: KeybindingsConfig{
			Up:             []string{"up", "k"},
			Down:           []string{"down", "j"},
			NextTab:        []string{"tab"},
			FilterStatus:   []string{"s"},
			FilterPriority: []string{"p"},
			ClearStatus:    []string{"S"},
			ClearPriority:  []string{"P"},
			SortStart:      []string{"1"},
			SortEnd:        []string{"2"},
			Add:            []string{"a"},
			Edit:           []string{"e", "enter"},
			Delete:         []string{"d"},
			Refresh:        []string{"r"},
			Quit:           []string{"q", "ctrl+c"},
		},
	}, nil
}
