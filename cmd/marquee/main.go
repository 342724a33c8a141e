package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	catalogPath := flag.String("catalog", "", "catalog file or http(s) URL (optional, overrides config)")
	exportPath := flag.String("export", "", "write the catalog as a static HTML page to this path and exit")
	search := flag.String("search", "", "initial title filter for -export")
	logPath := flag.String("log", "", "write logs to this file (optional, overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Catalog:    *catalogPath,
		ExportPath: *exportPath,
		Search:     *search,
		LogPath:    *logPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
