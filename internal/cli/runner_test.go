package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/grocery/internal/config"
	grocery "github.com/idilsaglam/grocery/internal/list"
	"github.com/idilsaglam/grocery/internal/share"
	"github.com/idilsaglam/grocery/internal/testutil"
	"github.com/idilsaglam/grocery/internal/tui"
)

type fakeLauncher struct {
	canOpen bool
	openErr error
	opened  []string
}

func (f *fakeLauncher) CanOpen(context.Context, string) bool { return f.canOpen }

func (f *fakeLauncher) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return f.openErr
}

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

func testOptions(t *testing.T) Options {
	t.Helper()
	for _, k := range []string{"GROCERY_THEME", "GROCERY_LOG_LEVEL", "GROCERY_MESSENGER_URL", "GROCERY_EMAIL_SUBJECT", "GROCERY_CLIPBOARD_FALLBACK"} {
		t.Setenv(k, "")
	}
	return Options{
		ConfigDir: t.TempDir(),
		NoColor:   true,
		Launcher:  &fakeLauncher{},
		Clipboard: &fakeClipboard{},
	}
}

func run(t *testing.T, opt Options, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), args, opt, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestHelpAndVersion(t *testing.T) {
	opt := testOptions(t)

	stdout, stderr, code := run(t, opt, "help")
	assert.Zero(t, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Usage:")

	stdout, _, code = run(t, opt, "version")
	assert.Zero(t, code)
	assert.Equal(t, "grocery "+Version+"\n", stdout)
}

func TestUnknownSubcommand(t *testing.T) {
	_, stderr, code := run(t, testOptions(t), "frobnicate")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown subcommand: frobnicate")
	assert.Contains(t, stderr, "Usage:")
}

func TestShare_DryRun(t *testing.T) {
	opt := testOptions(t)

	stdout, stderr, code := run(t, opt, "share", "-n", "Eggs", "+Milk")

	require.Zero(t, code, stderr)
	testutil.GoldenString(t, "share_dry_run", stdout)
	assert.Empty(t, opt.Launcher.(*fakeLauncher).opened)
}

func TestShare_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no items", []string{"share"}, "usage: grocery share"},
		{"unknown flag", []string{"share", "-z", "Milk"}, "share: flag provided but not defined"},
		{"only blanks", []string{"share", " ", "+"}, "nothing to share"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, testOptions(t), tt.args...)

			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestShare_HandsOff(t *testing.T) {
	t.Run("messenger", func(t *testing.T) {
		opt := testOptions(t)
		launcher := &fakeLauncher{canOpen: true}
		opt.Launcher = launcher

		stdout, _, code := run(t, opt, "share", "Eggs")

		assert.Zero(t, code)
		assert.Contains(t, stdout, "shared via messenger")
		require.Len(t, launcher.opened, 1)
		assert.True(t, strings.HasPrefix(launcher.opened[0], config.DefaultMessengerURL+"?text="))
	})

	t.Run("email", func(t *testing.T) {
		opt := testOptions(t)
		launcher := &fakeLauncher{}
		opt.Launcher = launcher

		stdout, _, code := run(t, opt, "share", "Eggs")

		assert.Zero(t, code)
		assert.Contains(t, stdout, "shared via email")
		require.Len(t, launcher.opened, 1)
		assert.True(t, strings.HasPrefix(launcher.opened[0], "mailto:?subject=Grocery%20List&body="))
	})

	t.Run("nothing available", func(t *testing.T) {
		opt := testOptions(t)
		opt.Launcher = &fakeLauncher{openErr: errors.New("no handler")}

		_, stderr, code := run(t, opt, "share", "Eggs")

		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "no messenger, mail client or clipboard")

		logged, err := os.ReadFile(filepath.Join(opt.ConfigDir, config.LogFileName))
		require.NoError(t, err)
		assert.Contains(t, string(logged), "email handoff failed")
	})

	t.Run("clipboard from config", func(t *testing.T) {
		opt := testOptions(t)
		opt.Launcher = &fakeLauncher{openErr: errors.New("no handler")}
		clip := &fakeClipboard{}
		opt.Clipboard = clip
		require.NoError(t, os.WriteFile(filepath.Join(opt.ConfigDir, config.FileName), []byte("share:\n  clipboard_fallback: true\n"), 0o600))

		stdout, _, code := run(t, opt, "share", "Eggs")

		assert.Zero(t, code)
		assert.Contains(t, stdout, "shared via clipboard")
		assert.Equal(t, "🛒 Grocery List\n\n📝 To Buy:\n• Eggs\n\n", clip.text)
	})
}

func TestPreview(t *testing.T) {
	stdout, _, code := run(t, testOptions(t), "preview", "Eggs", "+Milk", "Bread")

	assert.Zero(t, code)
	for _, want := range []string{"Grocery List", "Total 3", "33%", "To Buy:", "• Eggs", "• Bread", "Purchased:", "• Milk"} {
		assert.Contains(t, stdout, want)
	}

	_, stderr, code := run(t, testOptions(t), "preview")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: grocery preview")
}

func TestList_RunsTUIWithSeededItems(t *testing.T) {
	opt := testOptions(t)
	var got []string
	var gotSharer tui.Sharer
	opt.RunTUI = func(c *grocery.Controller, s tui.Sharer, o tui.Options) error {
		for _, it := range c.Items() {
			name := it.Name
			if it.Purchased {
				name = "+" + name
			}
			got = append(got, name)
		}
		gotSharer = s
		assert.NotNil(t, o.Logger)
		assert.NotNil(t, o.Context)
		return nil
	}

	_, _, code := run(t, opt, "ls", "Milk", "+Eggs")
	assert.Zero(t, code)
	assert.Equal(t, []string{"Milk", "+Eggs"}, got)
	assert.IsType(t, &share.Gateway{}, gotSharer)

	got = nil
	_, _, code = run(t, opt)
	assert.Zero(t, code, "no subcommand opens the list")
	assert.Empty(t, got)
}

func TestList_TUIError(t *testing.T) {
	opt := testOptions(t)
	opt.RunTUI = func(*grocery.Controller, tui.Sharer, tui.Options) error { return errors.New("no tty") }

	_, stderr, code := run(t, opt, "ls")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "tui: no tty")
}

func TestBadConfig(t *testing.T) {
	opt := testOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opt.ConfigDir, config.FileName), []byte("theme: [\n"), 0o600))

	_, stderr, code := run(t, opt, "preview", "Milk")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "config:")
}
