package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithOutput("info", "json", &buf); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { log = nil })

	WithFields(Fields{"missing": "BREVO_SMTP_HOST"}).Error("smtp config incomplete")
	Debugf("hidden %d", 1)

	out := buf.String()
	if !strings.Contains(out, `"missing":"BREVO_SMTP_HOST"`) {
		t.Fatalf("expected structured field in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", out)
	}
}

func TestInitWithOutput_UnknownLevel(t *testing.T) {
	if err := InitWithOutput("verbose", "text", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestWithFields_BeforeInit(t *testing.T) {
	log = nil
	// must not panic
	WithFields(Fields{"a": 1}).Info("discarded")
	Infof("discarded %s", "too")
}
