package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// BuildConfig holds the build-system settings used by every configuration.
type BuildConfig struct {
	Tool         string   `toml:"tool"`
	Target       string   `toml:"target"`
	Optimization string   `toml:"optimization"`
	VexConfig    string   `toml:"vex_config"`
	Root         string   `toml:"root"`
	Options      []string `toml:"options"`
}

// TestConfig holds the settings for running the test executable.
type TestConfig struct {
	Args []string `toml:"args"`
}

// Config holds all vextest configuration.
type Config struct {
	Build          BuildConfig `toml:"build"`
	Test           TestConfig  `toml:"test"`
	Compiler       string      `toml:"compiler"`
	Configurations []string    `toml:"configurations"`
	LogLevel       string      `toml:"log_level"`
	Browse         bool        `toml:"browse"`
}

const (
	defaultTool         = "cmake"
	defaultTarget       = "vex_tests"
	defaultOptimization = "RelWithDebInfo"
	defaultVexConfig    = "development"
	defaultRoot         = "out/build"
	defaultCompiler     = "cl.exe"
	defaultLogLevel     = "warn"
)

var (
	defaultOptions  = []string{"-DVEX_BUILD_TESTS=ON", "-DVEX_BUILD_EXAMPLES=OFF"}
	defaultTestArgs = []string{"--gtest_output=xml:test_results.xml", "--gtest_color=yes"}
)

// ToolOrDefault returns Build.Tool if set, otherwise "cmake".
func (c Config) ToolOrDefault() string {
	return orDefault(c.Build.Tool, defaultTool)
}

// TargetOrDefault returns Build.Target if set, otherwise "vex_tests".
func (c Config) TargetOrDefault() string {
	return orDefault(c.Build.Target, defaultTarget)
}

// OptimizationOrDefault returns Build.Optimization if set, otherwise "RelWithDebInfo".
func (c Config) OptimizationOrDefault() string {
	return orDefault(c.Build.Optimization, defaultOptimization)
}

// VexConfigOrDefault returns Build.VexConfig if set, otherwise "development".
func (c Config) VexConfigOrDefault() string {
	return orDefault(c.Build.VexConfig, defaultVexConfig)
}

// RootOrDefault returns Build.Root if set, otherwise "out/build".
func (c Config) RootOrDefault() string {
	return orDefault(c.Build.Root, defaultRoot)
}

// CompilerOrDefault returns the proprietary compiler driver probed on Windows.
func (c Config) CompilerOrDefault() string {
	return orDefault(c.Compiler, defaultCompiler)
}

// LogLevelOrDefault returns LogLevel if set, otherwise "warn".
func (c Config) LogLevelOrDefault() string {
	return orDefault(c.LogLevel, defaultLogLevel)
}

// OptionsOrDefault returns the extra configure options.
func (c Config) OptionsOrDefault() []string {
	if len(c.Build.Options) > 0 {
		return c.Build.Options
	}
	return append([]string(nil), defaultOptions...)
}

// TestArgsOrDefault returns the arguments passed to the test executable.
func (c Config) TestArgsOrDefault() []string {
	if len(c.Test.Args) > 0 {
		return c.Test.Args
	}
	return append([]string(nil), defaultTestArgs...)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// LoadFrom reads configuration from the given TOML file path.
// If the file does not exist, it returns an empty config without error.
// Environment variables always take precedence over file values:
//   - VEXTEST_BUILD_TOOL   overrides build.tool
//   - VEXTEST_OPTIMIZATION overrides build.optimization
//   - VEXTEST_VEX_CONFIG   overrides build.vex_config
//   - VEXTEST_BUILD_ROOT   overrides build.root
//   - VEXTEST_LOG_LEVEL    overrides log_level
//   - VEXTEST_BROWSE       overrides browse
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfigPath returns the settings file path: VEXTEST_CONFIG if set,
// otherwise vextest.toml in the working directory.
func DefaultConfigPath() string {
	if v := os.Getenv("VEXTEST_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(".", "vextest.toml")
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("VEXTEST_BUILD_TOOL"); v != "" {
		cfg.Build.Tool = v
	}
	if v := os.Getenv("VEXTEST_OPTIMIZATION"); v != "" {
		cfg.Build.Optimization = v
	}
	if v := os.Getenv("VEXTEST_VEX_CONFIG"); v != "" {
		cfg.Build.VexConfig = v
	}
	if v := os.Getenv("VEXTEST_BUILD_ROOT"); v != "" {
		cfg.Build.Root = v
	}
	if v := os.Getenv("VEXTEST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("VEXTEST_BROWSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid VEXTEST_BROWSE %q: %w", v, err)
		}
		cfg.Browse = b
	}
	return nil
}

func (c Config) validate() error {
	switch c.LogLevelOrDefault() {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	seen := make(map[string]bool, len(c.Configurations))
	for _, name := range c.Configurations {
		if name == "" {
			return fmt.Errorf("configurations: empty name")
		}
		if seen[name] {
			return fmt.Errorf("configurations: %q listed twice", name)
		}
		seen[name] = true
	}
	return nil
}
