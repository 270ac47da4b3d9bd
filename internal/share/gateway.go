//go:generate mockgen -source=gateway.go -destination=mock_share_test.go -package=share

// Package share hands a formatted grocery list to another application:
// a messaging app through its deep link first, then the mail client.
// Failures are logged and reported as an Outcome, never as an error.
package share

import (
	"context"
	"log/slog"
	"strings"
)

// Outcome reports which handoff, if any, was started.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeMessenger
	OutcomeEmail
	OutcomeClipboard
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMessenger:
		return "messenger"
	case OutcomeEmail:
		return "email"
	case OutcomeClipboard:
		return "clipboard"
	default:
		return "failed"
	}
}

// Launcher opens URLs with whatever handler the desktop has registered.
type Launcher interface {
	// CanOpen reports whether some handler is registered for target's scheme.
	CanOpen(ctx context.Context, target string) bool
	// Open starts the handler and returns without waiting for it.
	Open(ctx context.Context, target string) error
}

// Clipboard receives the text when no handoff could be started.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures the handoff targets.
type Options struct {
	MessengerURL      string
	EmailSubject      string
	ClipboardFallback bool
}

// Gateway tries the messenger deep link, then a mailto: compose.
type Gateway struct {
	launcher Launcher
	clip     Clipboard
	opts     Options
	log      *slog.Logger
}

// New builds a Gateway. clip may be nil when the clipboard fallback is off.
func New(launcher Launcher, clip Clipboard, opts Options, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		launcher: launcher,
		clip:     clip,
		opts:     opts,
		log:      log.With(slog.String("component", "share")),
	}
}

// MessengerURL is the deep link carrying text, e.g. whatsapp://send?text=...
func (g *Gateway) MessengerURL(text string) string {
	sep := "?"
	if strings.Contains(g.opts.MessengerURL, "?") {
		sep = "&"
	}
	return g.opts.MessengerURL + sep + "text=" + EncodeComponent(text)
}

// EmailURL is the mailto: compose link with text as the body.
func (g *Gateway) EmailURL(text string) string {
	return "mailto:?subject=" + EncodeComponent(g.opts.EmailSubject) + "&body=" + EncodeComponent(text)
}

// Share starts the first handoff that works. It does not retry and never
// blocks on the receiving application.
func (g *Gateway) Share(ctx context.Context, text string) Outcome {
	primary := g.MessengerURL(text)
	if g.launcher.CanOpen(ctx, primary) {
		err := g.launcher.Open(ctx, primary)
		if err == nil {
			g.log.Info("shared via messenger", slog.String("url", g.opts.MessengerURL))
			return OutcomeMessenger
		}
		g.log.Warn("messenger handoff failed", slog.Any("err", err))
	} else {
		g.log.Debug("messenger not available", slog.String("url", g.opts.MessengerURL))
	}

	err := g.launcher.Open(ctx, g.EmailURL(text))
	if err == nil {
		g.log.Info("shared via email")
		return OutcomeEmail
	}
	g.log.Error("email handoff failed", slog.Any("err", err))

	if g.opts.ClipboardFallback && g.clip != nil {
		if err := g.clip.WriteAll(text); err != nil {
			g.log.Error("clipboard fallback failed", slog.Any("err", err))
			return OutcomeFailed
		}
		g.log.Info("copied list to clipboard")
		return OutcomeClipboard
	}
	return OutcomeFailed
}
