package tui

import (
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

var openInBrowser = func(url string) error {
	var err error

	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = ErrUnsupportedPlatform
	}

	return err
}
