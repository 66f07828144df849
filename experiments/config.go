package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wangwang2111/quoridor-game/experiments/metrics"
	"github.com/wangwang2111/quoridor-game/meta"
)

// Config declares an experiment in a YAML file: each listed depth is
// matched against the baseline depth for the given number of games.
type Config struct {
	Name          string `yaml:"name"`
	Games         int    `yaml:"games"`
	BoardSize     int    `yaml:"board_size"`
	BaselineDepth int    `yaml:"baseline_depth"`
	Depths        []int  `yaml:"depths"`
}

// Load reads and validates an experiment config file, filling defaults for
// omitted fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}

	if config.Name == "" {
		config.Name = "depth_to_strength"
	}
	if config.Games <= 0 {
		config.Games = NumGames
	}
	if config.BoardSize <= 0 {
		config.BoardSize = meta.BOARD_SIZE
	}
	if config.BaselineDepth <= 0 {
		config.BaselineDepth = 1
	}
	if len(config.Depths) == 0 {
		return Config{}, fmt.Errorf("experiment config %q lists no depths", path)
	}
	return config, nil
}

// RunFromConfig runs the matchups declared in a YAML experiment config.
func RunFromConfig(path string) error {
	config, err := Load(path)
	if err != nil {
		return err
	}

	baseline := metrics.AgentConfig{ID: 0, Depth: config.BaselineDepth, BoardSize: config.BoardSize}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, depth := range config.Depths {
		c := metrics.AgentConfig{ID: i + 1, Depth: depth, BoardSize: config.BoardSize}
		configs = append(configs, c)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, c})
	}

	runExperiment(config.Name, configs, matchUps, config.Games)
	return nil
}
