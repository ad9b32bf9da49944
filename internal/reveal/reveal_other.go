//go:build !linux && !darwin && !windows

package reveal

import "github.com/takma/takma-desktop/internal/logging"

type unsupportedRevealer struct{}

func (unsupportedRevealer) Reveal(string) error {
	return ErrUnsupported
}

func newPlatform(*logging.Logger, Starter) Revealer {
	return unsupportedRevealer{}
}
