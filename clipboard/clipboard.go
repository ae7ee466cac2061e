// Package clipboard copies text to the system clipboard, preferring
// the native clipboard and falling back to the OSC52 terminal escape
// for sessions with no display (SSH, bare consoles).
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/andareed/tickdown/logging"
)

func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: native copy failed, trying OSC52: %v", err)
		return copyOSC52(text)
	}
	logging.Infof("Clipboard: copied natively")
	return nil
}
