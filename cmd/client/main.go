// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-photo-booth/internal/app"
	"github.com/MKhiriev/go-photo-booth/internal/client"
	"github.com/MKhiriev/go-photo-booth/internal/config"
	"github.com/MKhiriev/go-photo-booth/internal/logger"
	"github.com/MKhiriev/go-photo-booth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, app.MsgStartupFailedFmt+"\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("photo-booth-client", cfg.App.LogFile)
	defer log.Close()

	log.Info().
		Str("version", buildInfo.Version).
		Str("date", buildInfo.Date).
		Str("commit", buildInfo.Commit).
		Str("profile", string(cfg.App.Profile)).
		Msg("starting")

	booth, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, app.MsgStartupFailedFmt+"\n", err)
		os.Exit(1)
	}
	defer booth.Close()

	if err = booth.Run(); err != nil {
		log.Err(err).Msg("client run error")
	}
}
