package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteCrash(t *testing.T) {
	var buf bytes.Buffer
	writeCrash(&buf, "boom", []byte("goroutine 1 [running]:"))

	out := buf.String()
	for _, want := range []string{"CRASH DETECTED: boom", "Stack Trace:\r\n", "goroutine 1 [running]:"} {
		if !strings.Contains(out, want) {
			t.Errorf("crash report missing %q:\n%s", want, out)
		}
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	called := false
	orig := exit
	exit = func(int) { called = true }
	defer func() { exit = orig }()

	HandleCrash(nil)
	if called {
		t.Error("HandleCrash(nil) should not exit")
	}
}

func TestGuard_PassesThroughResult(t *testing.T) {
	sentinel := bytes.ErrTooLarge
	if err := Guard(func() error { return sentinel })(); err != sentinel {
		t.Errorf("Guard returned %v, want %v", err, sentinel)
	}
	if err := Guard(func() error { return nil })(); err != nil {
		t.Errorf("Guard returned %v, want nil", err)
	}
}
