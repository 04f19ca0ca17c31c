// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-column-labeler/labeler"
	"github.com/mattermost/mattermost-column-labeler/metrics"
	"github.com/mattermost/mattermost-column-labeler/version"
)

var (
	configFile string
)

func init() {
	flag.StringVar(&configFile, "config", "", "optional config file; the Actions environment fills the rest")
}

func main() {
	flag.Parse()

	config, err := labeler.GetConfig(configFile)
	if err != nil {
		mlog.Error("unable to load config", mlog.Err(err), mlog.String("file", configFile))
		os.Exit(1)
	}
	if err = labeler.SetupLogging(config); err != nil {
		mlog.Error("unable to configure logging", mlog.Err(err))
		os.Exit(1)
	}

	info := version.Full()
	mlog.Info("Starting column labeler",
		mlog.String("version", info.Version),
		mlog.String("hash", info.Hash),
		mlog.String("repo", config.Org+"/"+config.Repo),
		mlog.String("action", config.Action))

	metricsProvider := metrics.NewPrometheusProvider()
	if config.MetricsServerPort != "" {
		metricsServer := metrics.NewServer(config.MetricsServerPort, metricsProvider.Handler(), true)
		metricsServer.Start()
		defer metricsServer.Stop()
	}

	l, err := labeler.New(config, metricsProvider)
	if err != nil {
		mlog.Error("unable to create labeler", mlog.Err(err))
		os.Exit(1)
	}

	if err := l.Run(context.Background()); err != nil {
		mlog.Error("run failed", mlog.Err(err))
		os.Exit(1)
	}
}
