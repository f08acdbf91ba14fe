package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional settings file.  Anything left out keeps its default.
type Config struct {
	Credentials string         `yaml:"credentials"`
	Token       string         `yaml:"token"`
	Ignore      []string       `yaml:"ignore"`
	Throttle    ThrottleConfig `yaml:"throttle"`
}

type ThrottleConfig struct {
	Every int           `yaml:"every"`
	Pause time.Duration `yaml:"pause"`
}

func DefaultConfig() Config {
	throttle := DefaultThrottle()
	return Config{
		Credentials: "credentials.json",
		Token:       "token.json",
		Throttle: ThrottleConfig{
			Every: throttle.Every,
			Pause: throttle.Pause,
		},
	}
}

// LoadConfig reads a YAML settings file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) ThrottlePolicy() Throttle {
	return Throttle{Every: c.Throttle.Every, Pause: c.Throttle.Pause}
}

// ReadIgnoreList parses one tab title per line.  Titles are kept verbatim apart from the line ending.  Blank lines
// and lines starting with # are skipped; a title which itself starts with # is written as \#.
func ReadIgnoreList(r io.Reader) ([]string, error) {
	var titles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "", strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, `\#`):
			line = line[1:]
		}
		titles = append(titles, line)
	}
	return titles, scanner.Err()
}

func LoadIgnoreList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadIgnoreList(f)
}

// IgnoreSet merges title lists into a lookup set.
func IgnoreSet(lists ...[]string) map[string]bool {
	set := make(map[string]bool)
	for _, list := range lists {
		for _, title := range list {
			set[title] = true
		}
	}
	return set
}
