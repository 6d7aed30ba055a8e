package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Trade Journal Configuration

[database]
# Path to the SQLite journal database (default: <config dir>/journal.db)
path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[insight]
# Completion model used for AI performance reviews
model = "gpt-4o-mini"
# Override for OpenAI-compatible endpoints (leave empty for api.openai.com)
base_url = ""
`

const credentialsTemplate = `# Trade Journal Credentials
# Keep this file private. OPENAI_API_KEY in the environment takes precedence.

[openai]
api_key = ""
`

// createTemplateConfig writes a starter config.toml so first runs have a
// file to edit. The defaults above keep the app usable without it.
func createTemplateConfig(configDir string) error {
	return writeTemplate(configDir, "config.toml", configTemplate, 0644)
}

func createTemplateCredentials(configDir string) error {
	return writeTemplate(configDir, "credentials.toml", credentialsTemplate, 0600)
}

func writeTemplate(configDir, name, content string, perm os.FileMode) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
