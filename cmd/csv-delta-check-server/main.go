// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-csv-delta/internal/app"
	"github.com/MKhiriev/go-csv-delta/internal/config"
	"github.com/MKhiriev/go-csv-delta/internal/logger"
	"github.com/MKhiriev/go-csv-delta/internal/service"
	"github.com/MKhiriev/go-csv-delta/internal/store"
	"github.com/MKhiriev/go-csv-delta/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("csv-delta-check-server")
	cfg, err := config.GetServerCheckConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runner app.Runner
	runner, err = app.NewServerCheckApp(cfg, service.NewServices(log), store.NewStructureStore(log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = runner.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("csv-delta-check-server failed")
	}
}

// printBuildInfo writes to stderr: stdout may carry the output dataset.
func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
