// This file is part of Gravitron.
//
// Gravitron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gravitron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gravitron.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/gravitron/gravitron/assets"
	"github.com/gravitron/gravitron/digest"
	"github.com/gravitron/gravitron/logger"
	"github.com/gravitron/gravitron/modalflag"
	"github.com/gravitron/gravitron/paths"
	"github.com/gravitron/gravitron/performance"
	"github.com/gravitron/gravitron/performance/limiter"
	"github.com/gravitron/gravitron/platform"
	"github.com/gravitron/gravitron/platform/headless"
	"github.com/gravitron/gravitron/screen"
	"github.com/gravitron/gravitron/testcard"
)

// how often the progress line is updated when output is to a terminal.
const progressInterval = 30

// the names of keys accepted by the -keys option.
var keyNames = map[string]platform.Key{
	"ESCAPE": platform.KeyEscape,
	"F5":     platform.KeyF5,
	"F6":     platform.KeyF6,
	"F7":     platform.KeyF7,
	"F8":     platform.KeyF8,
	"F9":     platform.KeyF9,
	"F10":    platform.KeyF10,
	"F11":    platform.KeyF11,
	"M":      platform.KeyM,
	"UP":     platform.KeyUp,
	"DOWN":   platform.KeyDown,
	"RETURN": platform.KeyReturn,
}

// parseKeys converts a comma separated list of key names into events. the
// special name RESIZE:WxH simulates the user resizing the window.
func parseKeys(s string) ([]func(*headless.Binding), error) {
	var keys []func(*headless.Binding)
	for _, k := range strings.Split(s, ",") {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" {
			continue
		}

		if sz, ok := strings.CutPrefix(k, "RESIZE:"); ok {
			var w, h int
			if _, err := fmt.Sscanf(sz, "%dX%d", &w, &h); err != nil {
				return nil, fmt.Errorf("headless: bad resize %q: %w", sz, err)
			}
			keys = append(keys, func(b *headless.Binding) {
				b.Window().Resize(w, h)
			})
			continue
		}

		key, ok := keyNames[k]
		if !ok {
			return nil, fmt.Errorf("headless: unknown key %q", k)
		}
		keys = append(keys, func(b *headless.Binding) {
			b.PushEvent(platform.EventKey{Key: key})
		})
	}
	return keys, nil
}

func runHeadless(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	frames := md.AddInt("frames", 60, "number of frames to present")
	out := md.AddString("out", "", "filename for the final frame (PNG)")
	keys := md.AddString("keys", "", "keys to press, one per frame: F5-F11, M, UP, DOWN, RETURN, ESCAPE, RESIZE:WxH")
	desktop := md.AddString("desktop", "1920x1080", "size of the simulated desktop")
	useDigest := md.AddBool("digest", false, "print a digest of the presented frames")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *frames <= 0 {
		return fmt.Errorf("headless: number of frames must be positive (%d)", *frames)
	}

	input, err := parseKeys(*keys)
	if err != nil {
		return err
	}

	var dw, dh int
	if _, err := fmt.Sscanf(strings.ToLower(*desktop), "%dx%d", &dw, &dh); err != nil {
		return fmt.Errorf("headless: bad desktop size %q: %w", *desktop, err)
	}

	profile, done, err := opts.prepare()
	if err != nil {
		return err
	}
	defer done()

	_, settings, err := opts.settings(md)
	if err != nil {
		return err
	}

	binding := headless.NewBinding()
	binding.SetDesktopSize(dw, dh)

	var ast screen.Assets
	if *opts.assets != "" {
		ast = assets.NewStore(*opts.assets)
	}

	scr, err := screen.NewScreen(binding, ast, settings)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	lmtr, err := limiter.NewFPSLimiter(*opts.fps)
	if err != nil {
		return err
	}
	defer lmtr.Stop()

	sess := newSession(scr, binding)

	var dig *digest.Video
	if *useDigest {
		dig = digest.NewVideo()
	}

	// progress is only shown if it can be overwritten
	progress := term.IsTerminal(int(os.Stdout.Fd()))

	var n int
	startTime := time.Now()
	err = performance.RunProfiler(profile, "headless", func() error {
		for n = 0; n < *frames; n++ {
			if n < len(input) {
				input[n](binding)
			}
			if !sess.step() {
				break // for loop
			}
			if dig != nil {
				if f := binding.Frame(); f != nil {
					dig.AddFrame(f)
				}
			}
			if progress && n%progressInterval == 0 {
				fmt.Fprintf(os.Stdout, "\rframe %d/%d", n, *frames)
			}

			// headless vsync is simulated with the limiter
			if scr.VSync() {
				lmtr.Wait()
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if progress {
		fmt.Fprint(os.Stdout, "\r")
	}

	fps, accuracy := performance.CalcFPS(*opts.fps, n, time.Since(startTime).Seconds())
	fmt.Fprintf(os.Stdout, "%d frames (%.2f fps, %.1f%%)\n", n, fps, accuracy)
	fmt.Fprintf(os.Stdout, "%s\n", scr.GetSettings())
	if dig != nil {
		fmt.Fprintf(os.Stdout, "digest: %s\n", dig.Hash())
	}

	filename := *out
	if filename == "" {
		filename = fmt.Sprintf("%s.png", paths.UniqueFilename("gravitron", "headless"))
	}

	frame := binding.Frame()
	if frame == nil {
		return fmt.Errorf("headless: no frames were presented")
	}

	err = testcard.Save(filename, frame)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "headless", "final frame saved to %s", filename)
	fmt.Fprintf(os.Stdout, "final frame: %s\n", filename)

	return nil
}
