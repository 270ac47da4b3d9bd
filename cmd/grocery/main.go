package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/grocery/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "colour theme: classic, neon or mono")
	configDir := flag.String("config", "", "configuration directory (default $XDG_CONFIG_HOME/grocery)")
	debug := flag.Bool("debug", false, "write debug entries to the log file")
	noColor := flag.Bool("no-color", false, "disable colours")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := cli.Run(ctx, flag.Args(), cli.Options{
		ConfigDir: *configDir,
		Theme:     *theme,
		Debug:     *debug,
		NoColor:   *noColor,
	}, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
