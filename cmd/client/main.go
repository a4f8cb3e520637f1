package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secret-share/internal/cli"
	"github.com/MKhiriev/go-secret-share/internal/ui"
	"github.com/MKhiriev/go-secret-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err == nil {
		return
	}
	if !errors.Is(err, cli.ErrReported) {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error.Sprint("✗"), err)
	}
	stop()
	os.Exit(1)
}
