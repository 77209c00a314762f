package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-quick-actions/internal/app"
	"github.com/atomicstack/tmux-quick-actions/internal/menu"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envPrefix = "TMUX_QUICK_ACTIONS_"

	configName = "quick-actions"
	configDir  = "tmux-quick-actions"

	minPerPage = 3
)

// Load parses configuration from CLI arguments, environment variables and the
// optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// the environment, which wins over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	file, err := readConfigFile(configPath(args, env), env)
	if err != nil {
		return Config{}, err
	}
	src := sources{env: env, file: file}
	defaults := menu.DefaultOptions()

	fs := flag.NewFlagSet("tmux-quick-actions", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", src.str("socket", ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", src.integer("width", 0), "popup width in cells (0 uses terminal width)")
	height := fs.Int("height", src.integer("height", 0), "popup height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", src.boolean("footer", false), "show key hints below the menu")
	trace := fs.Bool("trace", src.boolean("trace", false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", src.boolean("verbose", false), "log executed actions and show tmux errors")
	logFile := fs.String("log-file", src.str("log-file", ""), "path to the log file")
	fs.String("config", "", "path to a YAML, TOML or JSON config file")
	list := fs.Bool("list", src.boolean("list", false), "print the command catalog and exit")
	perPage := fs.Int("per-page", src.integer("per-page", defaults.MaxPerPage), "maximum buttons on the outer ring")
	inner := fs.Float64("inner-radius", src.float("inner-radius", defaults.InnerRadius), "inner ring radius in cells")
	button := fs.Float64("button-radius", src.float("button-radius", defaults.ButtonRadius), "outer ring radius in cells")
	deadZone := fs.Float64("dead-zone", src.float("dead-zone", defaults.DeadZone), "radius around the centre that selects nothing (0 disables)")
	aspect := fs.Float64("cell-aspect", src.float("cell-aspect", defaults.Aspect), "height of a terminal cell in columns")
	releaseKey := fs.String("release-key", src.str("release-key", "enter"), "key that stands in for releasing the activation chord")
	poll := fs.Duration("poll-interval", src.duration("poll-interval", time.Second), "how often tmux state is refreshed while open")
	root := fs.String("root", src.str("root", ""), "open at a folder path such as Pane/Layout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   *socket,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			RootMenu:     strings.Trim(*root, "/"),
			List:         *list,
			ReleaseKey:   *releaseKey,
			PollInterval: *poll,
			Menu: menu.Options{
				MaxPerPage:   *perPage,
				InnerRadius:  *inner,
				ButtonRadius: *button,
				DeadZone:     *deadZone,
				Aspect:       *aspect,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"socket":       *socket,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
			"list":         strconv.FormatBool(*list),
			"perPage":      strconv.Itoa(*perPage),
			"innerRadius":  strconv.FormatFloat(*inner, 'g', -1, 64),
			"buttonRadius": strconv.FormatFloat(*button, 'g', -1, 64),
			"deadZone":     strconv.FormatFloat(*deadZone, 'g', -1, 64),
			"cellAspect":   strconv.FormatFloat(*aspect, 'g', -1, 64),
			"releaseKey":   *releaseKey,
			"pollInterval": poll.String(),
			"root":         *root,
		},
		Args: append([]string(nil), args...),
	}
	if file != nil {
		cfg.File = file.ConfigFileUsed()
	}

	return cfg, nil
}

// envName maps an option name to its environment variable,
// e.g. per-page to TMUX_QUICK_ACTIONS_PER_PAGE.
func envName(option string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(option, "-", "_"))
}

// configPath finds --config ahead of flag parsing, since the file supplies
// flag defaults.
func configPath(args []string, env map[string]string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return env[envName("config")]
}

// readConfigFile loads an explicit config file, or looks for quick-actions.*
// in the user's config directory. A missing default file is not an error.
func readConfigFile(path string, env map[string]string) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", expanded, err)
		}
		return v, nil
	}

	dir := defaultConfigDir(env)
	if dir == "" {
		return nil, nil
	}
	v.SetConfigName(configName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func defaultConfigDir(env map[string]string) string {
	if xdg := strings.TrimSpace(env["XDG_CONFIG_HOME"]); xdg != "" {
		return filepath.Join(xdg, configDir)
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configDir)
}

// sources layers the environment over the config file for flag defaults.
type sources struct {
	env  map[string]string
	file *viper.Viper
}

func (s sources) lookup(option string) (string, bool) {
	if v, ok := s.env[envName(option)]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	if s.file != nil && s.file.IsSet(option) {
		return s.file.GetString(option), true
	}
	return "", false
}

func (s sources) str(option, fallback string) string {
	if v, ok := s.env[envName(option)]; ok {
		return v
	}
	if s.file != nil && s.file.IsSet(option) {
		return s.file.GetString(option)
	}
	return fallback
}

func (s sources) integer(option string, fallback int) int {
	v, ok := s.lookup(option)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func (s sources) boolean(option string, fallback bool) bool {
	v, ok := s.lookup(option)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func (s sources) float(option string, fallback float64) float64 {
	v, ok := s.lookup(option)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (s sources) duration(option string, fallback time.Duration) time.Duration {
	v, ok := s.lookup(option)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations the menu cannot lay out.
func Validate(cfg Config) error {
	opts := cfg.App.Menu
	switch {
	case opts.MaxPerPage < minPerPage:
		return fmt.Errorf("per-page must be >= %d (got %d)", minPerPage, opts.MaxPerPage)
	case opts.InnerRadius <= 0:
		return fmt.Errorf("inner-radius must be > 0 (got %g)", opts.InnerRadius)
	case opts.InnerRadius >= opts.ButtonRadius:
		return fmt.Errorf("inner-radius (%g) must be smaller than button-radius (%g)", opts.InnerRadius, opts.ButtonRadius)
	case opts.DeadZone < 0:
		return fmt.Errorf("dead-zone must be >= 0 (got %g)", opts.DeadZone)
	case opts.DeadZone >= opts.InnerRadius:
		return fmt.Errorf("dead-zone (%g) must be smaller than inner-radius (%g)", opts.DeadZone, opts.InnerRadius)
	case opts.Aspect <= 0:
		return fmt.Errorf("cell-aspect must be > 0 (got %g)", opts.Aspect)
	case cfg.App.PollInterval <= 0:
		return fmt.Errorf("poll-interval must be > 0 (got %s)", cfg.App.PollInterval)
	case strings.TrimSpace(cfg.App.ReleaseKey) == "":
		return errors.New("release-key must not be empty")
	}
	return nil
}
