// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package labeler

import (
	"fmt"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
)

const logConfigTemplate = `{"console":{"type":"console","format":"%s","levels":[%s],"options":{"out":"stderr"}}}`

// SetupLogging configures the global logger with a console target built from
// the config's log settings.
func SetupLogging(config *Config) error {
	logger, err := mlog.NewLogger()
	if err != nil {
		return err
	}
	if err := logger.Configure("", consoleLogConfig(config.LogSettings), nil); err != nil {
		return err
	}
	mlog.InitGlobalLogger(logger)
	return nil
}

func consoleLogConfig(settings LogSettings) string {
	format := "plain"
	if settings.ConsoleJSON {
		format = "json"
	}

	levels := []string{
		`{"id":2,"name":"error","stacktrace":true}`,
		`{"id":3,"name":"warn"}`,
		`{"id":4,"name":"info"}`,
	}
	if strings.EqualFold(settings.ConsoleLevel, "debug") {
		levels = append(levels, `{"id":5,"name":"debug"}`)
	}

	return fmt.Sprintf(logConfigTemplate, format, strings.Join(levels, ","))
}
