package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultPrompts are the built-in user prompts for each agent, used when
// the YAML config doesn't override them.
var defaultPrompts = map[string]string{
	AgentIdeaValidator:     "Please validate this idea and provide your analysis.",
	AgentLandingPageWriter: "Please write the landing page copy.",
	AgentTechStackAdvisor:  "Please recommend a tech stack.",
}

// Load reads and parses a launchpad configuration from the given YAML file
// path, then applies defaults for anything left unset.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault searches for a launchpad config in standard locations and
// loads the first one found. Search order: ./launchpad.yaml,
// ~/.launchpad/config.yaml. If none exists, the built-in defaults are
// returned.
func LoadDefault() (*File, error) {
	candidates := []string{"launchpad.yaml"}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, ".launchpad", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	var cfg File
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in unset fields and merges the built-in agent
// prompts for agents the file doesn't configure.
func applyDefaults(cfg *File) {
	l := &cfg.Launchpad

	if l.OutputDir == "" {
		l.OutputDir = "output"
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 4096
	}
	if l.RequestTimeout == "" {
		l.RequestTimeout = "120s"
	}

	if l.Agents == nil {
		l.Agents = make(map[string]Agent)
	}
	for _, key := range AgentKeys {
		a := l.Agents[key]
		if a.Prompt == "" {
			a.Prompt = defaultPrompts[key]
		}
		l.Agents[key] = a
	}
}
