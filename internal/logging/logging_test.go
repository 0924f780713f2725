package logging

import "testing"

func TestNewDoesNotPanic(t *testing.T) {
	l := New()
	l.Info("starting")
	l.Infof("depth %d", 6)
	l.Errorf("oops: %v", "bad")
	l.Sync()
}
