package logger

import "testing"

func exerciseLogger(l Logger) {
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"slots": 24})
	l.Infof("info %s", "planner")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerConsoleMode(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	l := NewZerologLogger("planner")
	if l == nil {
		t.Fatalf("nil logger")
	}
	exerciseLogger(l)
}

func TestZerologLoggerJSONMode(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	exerciseLogger(New("planner"))
}

func TestNopLogger(t *testing.T) {
	exerciseLogger(NopLogger{})
}
