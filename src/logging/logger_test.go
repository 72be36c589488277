package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel("info")
	})
	return &buf
}

func TestLevels_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("debug")

	msg := "rendered \"GenEval Performance (%)\" axis range=[80,92] (100.0% of points kept)"
	levels := map[string]func(string, ...interface{}){
		"[DEBUG]": Debugf,
		"[INFO]":  Infof,
		"[WARN]":  Warnf,
		"[ERROR]": Errorf,
	}
	for prefix, logFn := range levels {
		buf.Reset()
		logFn(msg)
		out := buf.String()
		if !strings.Contains(out, prefix) || !strings.Contains(out, "(100.0% of points kept)") {
			t.Fatalf("%s: log output missing expected percent segment: %s", prefix, out)
		}
		if strings.Contains(out, "%!") {
			t.Fatalf("%s: log output still shows fmt artifact: %s", prefix, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("warn")

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines, got %q", out)
	}
}

func TestSetLogLevelIgnoresUnknown(t *testing.T) {
	captureLogs(t)
	SetLogLevel("debug")
	SetLogLevel("verbose")
	if getLevel() != LevelDebug {
		t.Fatalf("unknown level changed state: got %v", getLevel())
	}
	if ValidLevel("verbose") {
		t.Fatalf("verbose should not be a valid level")
	}
	if !ValidLevel(" Warning ") {
		t.Fatalf("warning should be accepted case-insensitively")
	}
}
