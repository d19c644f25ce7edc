package levelstate

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0), false)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("broken %s", "thing")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked without debug enabled: %q", out)
	}
	if !strings.Contains(out, "INFO [level] shown 2") {
		t.Fatalf("missing info line: %q", out)
	}
	if !strings.Contains(out, "ERROR [level] broken thing") {
		t.Fatalf("missing error line: %q", out)
	}

	buf.Reset()
	l = NewLogger(log.New(&buf, "", 0), true)
	l.Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG [level] visible") {
		t.Fatalf("missing debug line: %q", buf.String())
	}
}
