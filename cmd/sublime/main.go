// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sublime-security/sublime-cli/internal/cli"
	"github.com/sublime-security/sublime-cli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cli.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	code := app.Execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
