package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
)

// Config carries process-level settings read from the environment.
type Config struct {
	// DBPath locates the chart archive SQLite file.
	DBPath string `env:"BAZI_DB_PATH" envDefault:"charts.db"`
	// Debug forces debug logging regardless of the --verbose flag.
	Debug bool `env:"BAZI_DEBUG" envDefault:"false"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// rulesFile is the on-disk shape of an interaction-rule override file:
//
//	combinations:
//	  - pair: [Wu, Wei]
//	    element: earth
type rulesFile struct {
	Combinations []combinationRule `yaml:"combinations"`
}

type combinationRule struct {
	Pair    [2]string `yaml:"pair"`
	Element string    `yaml:"element"`
}

// loadTables builds the interaction tables for this invocation,
// applying the --rules override file when one was given.
func loadTables(path string) (*interact.Tables, error) {
	tables := interact.DefaultTables()
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rules rulesFile
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	reg := cycle.Default()
	for _, rule := range rules.Combinations {
		a, err := reg.BranchByName(rule.Pair[0])
		if err != nil {
			return nil, fmt.Errorf("rules file: %w", err)
		}
		b, err := reg.BranchByName(rule.Pair[1])
		if err != nil {
			return nil, fmt.Errorf("rules file: %w", err)
		}
		el, err := parseElement(rule.Element)
		if err != nil {
			return nil, fmt.Errorf("rules file: %w", err)
		}
		if _, err := tables.WithCombinationResult(a.Index, b.Index, el); err != nil {
			return nil, fmt.Errorf("rules file: %s-%s: %w", rule.Pair[0], rule.Pair[1], err)
		}
	}
	return tables, nil
}

func parseElement(s string) (cycle.Element, error) {
	for _, el := range cycle.Elements {
		if string(el) == s {
			return el, nil
		}
	}
	return "", fmt.Errorf("unknown element %q", s)
}
