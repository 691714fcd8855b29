// Package browser opens generated pages and the dashboard in a web browser.
package browser

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// System selects the platform's default browser.
const System = "system"

// Opener launches a browser on files or URLs.
type Opener struct {
	browser string
	goos    string
}

// NewOpener creates an opener. browser is "system" (or blank) for the
// platform default, otherwise a command to run with the target appended.
func NewOpener(browser string) *Opener {
	browser = strings.TrimSpace(browser)
	if browser == "" {
		browser = System
	}
	return &Opener{browser: browser, goos: runtime.GOOS}
}

// OpenFile opens a local HTML file. The file must exist.
func (o *Opener) OpenFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", abs)
		}
		return fmt.Errorf("checking file: %w", err)
	}
	return o.start(abs)
}

// OpenURL opens an http(s) URL.
func (o *Opener) OpenURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("not an http(s) URL: %s", url)
	}
	return o.start(url)
}

func (o *Opener) start(target string) error {
	cmd, err := o.command(target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// command returns the command that opens target.
func (o *Opener) command(target string) (*exec.Cmd, error) {
	if o.browser != System {
		fields := strings.Fields(o.browser)
		return exec.Command(fields[0], append(fields[1:], target)...), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", o.goos)
	}
}

// DashboardURL returns the browsable URL for a listen address.
// Wildcard hosts are replaced with localhost.
func DashboardURL(listen string) string {
	host, port := listen, ""
	if i := strings.LastIndex(listen, ":"); i >= 0 {
		host, port = listen[:i], listen[i+1:]
	}
	if host == "" || host == "0.0.0.0" || host == "[::]" {
		host = "localhost"
	}
	if port == "" {
		return "http://" + host + "/"
	}
	return "http://" + host + ":" + port + "/"
}
