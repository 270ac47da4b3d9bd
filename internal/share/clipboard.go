package share

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrNoClipboard = errors.New("no clipboard utility available")

// SystemClipboard writes through xclip/xsel/wl-copy, pbcopy or the
// Windows clipboard API, whichever the platform offers.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}
