// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package labeler

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	ActionAdd    = "add"
	ActionRemove = "remove"

	defaultTokenReserve = 200
)

type LogSettings struct {
	ConsoleJSON  bool
	ConsoleLevel string
}

// Config carries everything a run needs. It is built once at process entry
// and passed by parameter; nothing reads it from package state.
type Config struct {
	GithubAccessToken  string
	GitHubTokenReserve int
	Org                string
	Repo               string

	// Action selects the label mutation direction for the whole run.
	Action string

	// SkipLabeled makes add runs list an issue's labels first and leave
	// issues alone when they already carry every requested label.
	SkipLabeled bool

	// Directives is the raw JSON array of column/label directives. It is
	// validated by the run itself, not here, so one bad entry surfaces as a
	// skipped directive rather than a config failure.
	Directives json.RawMessage

	MetricsServerPort string

	LogSettings LogSettings
}

// GetConfig loads the configuration from an optional JSON file and the
// GitHub Actions environment. Environment values win over file values so the
// same config file can be shared across workflows.
func GetConfig(fileName string) (*Config, error) {
	config := &Config{
		Action:             ActionAdd,
		GitHubTokenReserve: defaultTokenReserve,
		LogSettings: LogSettings{
			ConsoleLevel: "info",
		},
	}

	if fileName != "" {
		f, err := os.Open(fileName)
		if err != nil {
			return nil, errors.Wrap(err, "could not open config file")
		}
		defer f.Close()

		if err := json.NewDecoder(f).Decode(config); err != nil {
			return nil, errors.Wrap(err, "could not decode config file")
		}
	}

	config.applyEnvironment()

	if err := config.IsValid(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) applyEnvironment() {
	if token := firstEnv("INPUT_TOKEN", "GITHUB_TOKEN"); token != "" {
		config.GithubAccessToken = token
	}
	if repository := os.Getenv("GITHUB_REPOSITORY"); repository != "" {
		if parts := strings.SplitN(repository, "/", 2); len(parts) == 2 {
			config.Org = parts[0]
			config.Repo = parts[1]
		}
	}
	if directives := os.Getenv("INPUT_CONFIG"); directives != "" {
		config.Directives = json.RawMessage(directives)
	}
	if action := os.Getenv("INPUT_ACTION"); action != "" {
		config.Action = strings.ToLower(action)
	}
	if skip := os.Getenv("INPUT_SKIP_LABELED"); skip != "" {
		config.SkipLabeled = strings.EqualFold(skip, "true")
	}
}

func (config *Config) IsValid() error {
	if config.GithubAccessToken == "" {
		return errors.New("github access token is not set")
	}
	if config.Org == "" || config.Repo == "" {
		return errors.New("repository owner and name are not set")
	}
	if config.Action != ActionAdd && config.Action != ActionRemove {
		return errors.Errorf("unknown action %q", config.Action)
	}
	if len(config.Directives) == 0 {
		return errors.New("no directive configuration provided")
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
