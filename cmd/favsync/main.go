package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/favsync/internal/cli"
	"github.com/MKhiriev/favsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.NewRootCommand(info).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "favsync:", err)
		os.Exit(1)
	}
}
