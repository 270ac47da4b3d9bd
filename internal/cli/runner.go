package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/idilsaglam/grocery/internal/config"
	grocery "github.com/idilsaglam/grocery/internal/list"
	"github.com/idilsaglam/grocery/internal/logging"
	"github.com/idilsaglam/grocery/internal/share"
	"github.com/idilsaglam/grocery/internal/tui"
	"github.com/idilsaglam/grocery/internal/ui"
)

// Version is printed by `grocery version`.
const Version = "0.1.0"

// Options carry root flags and the collaborators tests may replace.
type Options struct {
	ConfigDir string
	Theme     string
	Debug     bool
	NoColor   bool

	// Launcher and Clipboard default to the system ones when nil.
	Launcher  share.Launcher
	Clipboard share.Clipboard

	// RunTUI defaults to tui.Run.
	RunTUI func(*grocery.Controller, tui.Sharer, tui.Options) error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options, out, errOut io.Writer) int {
	cmd, a := "ls", args
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(out)
		return 0

	case "version":
		fmt.Fprintf(out, "grocery %s\n", Version)
		return 0

	case "ls":
		e, code := setup(opt, errOut)
		if code != 0 {
			return code
		}
		defer e.close()
		return doList(ctx, e, a, errOut)

	case "share":
		fs := flag.NewFlagSet("share", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		dryRun := fs.Bool("n", false, "print the message instead of sending it")
		if err := fs.Parse(a); err != nil {
			ui.Fail(errOut, "share: "+err.Error())
			return 2
		}
		if fs.NArg() == 0 {
			ui.Fail(errOut, "usage: grocery share [-n] <item...>")
			return 2
		}
		e, code := setup(opt, errOut)
		if code != 0 {
			return code
		}
		defer e.close()
		return doShare(ctx, e, fs.Args(), *dryRun, out, errOut)

	case "preview":
		if len(a) == 0 {
			ui.Fail(errOut, "usage: grocery preview <item...>")
			return 2
		}
		e, code := setup(opt, errOut)
		if code != 0 {
			return code
		}
		defer e.close()
		return doPreview(a, out)
	}

	ui.Fail(errOut, "unknown subcommand: "+cmd)
	fmt.Fprintln(errOut)
	PrintHelp(errOut)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `grocery - a grocery list for the terminal

Usage:
  grocery [flags] [subcommand] [args]

Subcommands:
  ls [item...]           Open the list (default), optionally pre-filled
  share [-n] <item...>   Send a list to your messenger (-n: print it instead)
  preview <item...>      Show a list and its share message
  version                Print the version

Items starting with + are marked purchased, e.g. +Milk.

Keys (ls):
  a add · space toggle/select · v start selecting · d delete
  x delete selected · s share · / filter · q quit

Flags:
  -theme <classic|neon|mono>  -config <dir>  -debug  -no-color

Examples:
  grocery
  grocery ls Milk Eggs
  grocery share -n Eggs +Milk
`)
}

// env is what every list-touching subcommand needs.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
	opt    Options
}

func (e *env) close() {
	if e.closer != nil {
		e.closer.Close()
	}
}

func (e *env) gateway() *share.Gateway {
	launcher := e.opt.Launcher
	if launcher == nil {
		launcher = share.NewSystemLauncher()
	}
	clip := e.opt.Clipboard
	if clip == nil {
		clip = share.SystemClipboard{}
	}
	return share.New(launcher, clip, share.Options{
		MessengerURL:      e.cfg.Share.MessengerURL,
		EmailSubject:      e.cfg.Share.EmailSubject,
		ClipboardFallback: e.cfg.Share.ClipboardFallback,
	}, e.log)
}

// setup resolves config (file, env, then flags), the theme and the log file.
func setup(opt Options, errOut io.Writer) (*env, int) {
	cfg, err := config.Load(opt.ConfigDir)
	if err != nil {
		ui.Fail(errOut, "config: "+err.Error())
		return nil, 1
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.Debug {
		cfg.LogLevel = "debug"
	}
	if opt.NoColor {
		cfg.NoColor = true
	}

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}

	e := &env{cfg: cfg, opt: opt, log: logging.Discard()}
	if err := cfg.EnsureDir(); err != nil {
		ui.Fail(errOut, "logging disabled: "+err.Error())
		return e, 0
	}
	log, closer, err := logging.Open(cfg.LogPath(), "grocery", logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		ui.Fail(errOut, "logging disabled: "+err.Error())
		return e, 0
	}
	e.log, e.closer = log, closer
	e.log.Debug("config loaded", slog.String("dir", cfg.Dir), slog.String("theme", cfg.Theme))
	return e, 0
}

// seed builds a controller from command-line items; +name means purchased.
func seed(args []string) *grocery.Controller {
	c := grocery.New()
	for _, a := range args {
		a = strings.TrimSpace(a)
		bought := strings.HasPrefix(a, "+")
		it, ok := c.AddItem(strings.TrimPrefix(a, "+"))
		if ok && bought {
			c.TogglePurchased(it.ID)
		}
	}
	return c
}

// -------------- subcommand impls ----------------

func doList(ctx context.Context, e *env, args []string, errOut io.Writer) int {
	run := e.opt.RunTUI
	if run == nil {
		run = tui.Run
	}
	err := run(seed(args), e.gateway(), tui.Options{Context: ctx, Logger: e.log})
	if err != nil {
		e.log.Error("tui exited", slog.Any("err", err))
		ui.Fail(errOut, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doShare(ctx context.Context, e *env, args []string, dryRun bool, out, errOut io.Writer) int {
	c := seed(args)
	if c.Len() == 0 {
		ui.Fail(errOut, "share: nothing to share")
		return 2
	}
	text := c.ShareText()
	if dryRun {
		fmt.Fprint(out, text)
		return 0
	}

	outcome := e.gateway().Share(ctx, text)
	if outcome == share.OutcomeFailed {
		ui.Fail(errOut, "share: no messenger, mail client or clipboard available (see "+e.cfg.LogPath()+")")
		return 1
	}
	ui.OK(out, "shared via "+outcome.String())
	return 0
}

func doPreview(args []string, out io.Writer) int {
	c := seed(args)
	t := ui.Current()
	toBuy, bought := c.Counts()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Grocery List"),
		t.Pending.Render(t.Bullet), toBuy,
		t.Success.Render(t.SymOK), bought,
		t.Accent.Render("Total"), c.Len(),
	)

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(bought, c.Len(), 28)),
		"",
	}
	lines = append(lines, strings.Split(strings.TrimRight(c.ShareText(), "\n"), "\n")...)
	ui.Panel(out, lines)
	return 0
}
