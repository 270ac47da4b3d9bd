package share

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// SystemLauncher opens URLs with the platform's opener: open on macOS,
// rundll32 on Windows and xdg-open elsewhere.
type SystemLauncher struct {
	goos   string
	output func(ctx context.Context, name string, args ...string) ([]byte, error)
	start  func(name string, args ...string) error
}

func NewSystemLauncher() *SystemLauncher {
	return &SystemLauncher{
		goos:   runtime.GOOS,
		output: commandOutput,
		start:  startDetached,
	}
}

// CanOpen asks xdg-mime for a scheme handler on freedesktop systems. macOS
// and Windows give no cheap answer, so they report true and let Open fail.
func (l *SystemLauncher) CanOpen(ctx context.Context, target string) bool {
	scheme := schemeOf(target)
	if scheme == "" {
		return false
	}
	switch l.goos {
	case "darwin", "windows":
		return true
	}
	out, err := l.output(ctx, "xdg-mime", "query", "default", "x-scheme-handler/"+scheme)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

func (l *SystemLauncher) Open(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("open: empty url")
	}
	name, args := l.command(target)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", schemeOf(target), err)
	}
	return nil
}

func (l *SystemLauncher) command(target string) (string, []string) {
	switch l.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func schemeOf(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

func commandOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap the opener; its exit status is not interesting
	go func() { _ = cmd.Wait() }()
	return nil
}
