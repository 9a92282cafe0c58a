package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if buf.String() != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	if buf.String() != "" {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInfoWarnError_AlwaysEmit(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Info("info %d", 1)
	Warn("warn %d", 2)
	Error("error %d", 3)

	want := "[INFO] info 1\n[WARN] warn 2\n[ERROR] error 3\n"
	if buf.String() != want {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
