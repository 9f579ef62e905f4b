package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestLogger(verbose, debug bool) (Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Logger{Verbose: verbose, Debug: debug, Out: &out, Err: &errOut}, &out, &errOut
}

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		verbose   bool
		debug     bool
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", false, false, false, false},
		{"verbose", true, false, true, false},
		{"debug", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger(tt.verbose, tt.debug)
			l.Infof("info %d", 1)
			l.Debugf("debug %d", 2)

			if got := strings.Contains(out.String(), "[info] info 1"); got != tt.wantInfo {
				t.Errorf("info shown = %t, want %t (output %q)", got, tt.wantInfo, out.String())
			}
			if got := strings.Contains(out.String(), "[debug] debug 2"); got != tt.wantDebug {
				t.Errorf("debug shown = %t, want %t (output %q)", got, tt.wantDebug, out.String())
			}
		})
	}
}

func TestWarnAndErrorAlwaysShown(t *testing.T) {
	color.NoColor = true

	l, out, errOut := newTestLogger(false, false)
	l.Warnf("careful")
	l.Errorf("broken")

	if out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[warn] careful") || !strings.Contains(errOut.String(), "[error] broken") {
		t.Errorf("stderr = %q, want warn and error lines", errOut.String())
	}
}

func TestErrorfAndReturn(t *testing.T) {
	color.NoColor = true

	l, _, errOut := newTestLogger(false, false)
	err := l.ErrorfAndReturn("failed to load %s", "config")

	if err == nil || err.Error() != "failed to load config" {
		t.Errorf("ErrorfAndReturn returned %v", err)
	}
	if !strings.Contains(errOut.String(), "[error] failed to load config") {
		t.Errorf("stderr = %q, want logged error", errOut.String())
	}
}

func TestErrorfAndReturnWrapsCause(t *testing.T) {
	color.NoColor = true

	cause := errors.New("disk full")
	l, _, errOut := newTestLogger(false, false)
	err := l.ErrorfAndReturn("failed to save: %w", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false, want true", err)
	}
	if got := errOut.String(); !strings.Contains(got, "[error] failed to save: disk full") {
		t.Errorf("stderr = %q, want the rendered cause", got)
	}
}
