package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "optics2d")
	v.SetDefault("trace.maxextensions", 1000)
	v.SetDefault("log.level", "debug")
	v.SetDefault("output.snapshot", "optics2d.png")
	v.SetDefault("game.statsinterval_seconds", 5)
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetSceneFile() string {
	sceneFile := c.config.GetString("SCENE_FILE")
	if len(sceneFile) == 0 {
		sceneFile = c.config.GetString("scene.file")
	}

	return sceneFile
}

func (c *Config) GetMaxExtensions() int {
	maxExtensions := c.config.GetInt("TRACE_MAX_EXTENSIONS")
	if maxExtensions == 0 {
		maxExtensions = c.config.GetInt("trace.maxextensions")
	}

	return maxExtensions
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetSnapshotFile() string {
	snapshotFile := c.config.GetString("SNAPSHOT_FILE")
	if len(snapshotFile) == 0 {
		snapshotFile = c.config.GetString("output.snapshot")
	}

	return snapshotFile
}

// GetHeadless reports whether to write a snapshot and exit instead of opening a window.
func (c *Config) GetHeadless() bool {
	if c.config.IsSet("HEADLESS") {
		return c.config.GetBool("HEADLESS")
	}

	return c.config.GetBool("output.headless")
}

func (c *Config) GetStatsInterval() int {
	statsIntervalSeconds := c.config.GetInt("STATS_INTERVAL_SECONDS")
	if statsIntervalSeconds == 0 {
		statsIntervalSeconds = c.config.GetInt("game.statsinterval_seconds")
	}

	return statsIntervalSeconds
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
