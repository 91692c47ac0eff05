// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/client"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-device-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewDeviceLogger("go-device-sync", cfg.Device.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sync daemon error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("sync daemon run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
