//go:build darwin

package reveal

import "github.com/takma/takma-desktop/internal/logging"

func newPlatform(log *logging.Logger, start Starter) Revealer {
	return &commandRevealer{log: log, start: start, command: finderCommand}
}
