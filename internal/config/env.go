package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Credential names read at startup.
const (
	EnvSDKKey = "LAUNCHDARKLY_SDK_KEY"
	EnvAPIKey = "ANTHROPIC_API_KEY"
)

// Credential returns the named credential from the environment, falling
// back to ~/.launchpad/.env. Empty string means not set anywhere.
func Credential(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return readEnvFileVar(filepath.Join(home, ".launchpad", ".env"), key)
}

// readEnvFileVar reads the value of a specific key from a .env file.
// Supports both "KEY=VALUE" and "export KEY=VALUE" formats.
// Returns empty string if the file or key is not found.
func readEnvFileVar(path, key string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == key {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}
