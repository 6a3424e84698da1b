package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
launchpad:
  output_dir: my-output
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	l := cfg.Launchpad
	if l.OutputDir != "my-output" {
		t.Errorf("OutputDir = %q, want %q", l.OutputDir, "my-output")
	}
	if l.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %d, want 4096", l.MaxTokens)
	}
	if l.RequestTimeout != "120s" {
		t.Errorf("RequestTimeout = %q, want %q", l.RequestTimeout, "120s")
	}
	for _, key := range AgentKeys {
		if l.Agents[key].Prompt == "" {
			t.Errorf("agent %q has no default prompt", key)
		}
	}
}

func TestLoadAgentOverride(t *testing.T) {
	path := writeConfig(t, `
launchpad:
  agents:
    idea-validator:
      prompt: "Tear this idea apart."
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Launchpad.Agents[AgentIdeaValidator].Prompt; got != "Tear this idea apart." {
		t.Errorf("override prompt = %q", got)
	}
	// Non-overridden agents still get defaults.
	if cfg.Launchpad.Agents[AgentTechStackAdvisor].Prompt == "" {
		t.Error("tech-stack-advisor lost its default prompt")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "launchpad: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidateOK(t *testing.T) {
	var cfg File
	applyDefaults(&cfg)
	if errs := Validate(&cfg); len(errs) != 0 {
		t.Fatalf("default config should validate, got %v", errs)
	}
}

func TestValidateErrors(t *testing.T) {
	cfg := &File{Launchpad: Launchpad{
		OutputDir:      "",
		MaxTokens:      -1,
		RequestTimeout: "soon",
		Agents: map[string]Agent{
			"idea-validator": {Prompt: ""},
			"mystery-agent":  {Prompt: "hi"},
		},
	}}

	errs := Validate(cfg)
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}

	for _, want := range []string{
		"launchpad.output_dir",
		"launchpad.max_tokens",
		"launchpad.request_timeout",
		"launchpad.agents.idea-validator.prompt",
		"launchpad.agents.mystery-agent",
	} {
		if !fields[want] {
			t.Errorf("missing validation error for %s (got %v)", want, errs)
		}
	}
}

func TestCredentialEnvFileFallback(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "# comment\nexport LAUNCHDARKLY_SDK_KEY=sdk-from-file\nANTHROPIC_API_KEY = key-from-file\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if got := readEnvFileVar(envFile, "LAUNCHDARKLY_SDK_KEY"); got != "sdk-from-file" {
		t.Errorf("LAUNCHDARKLY_SDK_KEY = %q, want %q", got, "sdk-from-file")
	}
	if got := readEnvFileVar(envFile, "ANTHROPIC_API_KEY"); got != "key-from-file" {
		t.Errorf("ANTHROPIC_API_KEY = %q, want %q", got, "key-from-file")
	}
	if got := readEnvFileVar(envFile, "MISSING"); got != "" {
		t.Errorf("MISSING = %q, want empty", got)
	}
}
