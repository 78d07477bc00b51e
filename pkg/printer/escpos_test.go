package printer

import (
	"strings"
	"testing"
)

func TestKeyValueAlignment(t *testing.T) {
	d := NewDocument(32)
	d.KeyValue("Total:", "448.40")

	out := string(d.Bytes())
	idx := strings.Index(out, "Total:")
	if idx < 0 {
		t.Fatal("key not found in output")
	}
	line := out[idx:]
	if end := strings.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	if len(line) != 32 {
		t.Errorf("line width = %d, want 32: %q", len(line), line)
	}
	if !strings.HasSuffix(line, "448.40") {
		t.Errorf("value not right-aligned: %q", line)
	}
}

func TestItemLine(t *testing.T) {
	d := NewDocument(32)
	d.ItemLine(2, "Silk Saree", "212.40")

	out := string(d.Bytes())
	if !strings.Contains(out, "2x Silk Saree") {
		t.Errorf("item prefix missing: %q", out)
	}
	if !strings.Contains(out, "212.40") {
		t.Errorf("item total missing: %q", out)
	}
}

func TestSeparatorWidth(t *testing.T) {
	d := NewDocument(48)
	d.Separator('-')

	if !strings.Contains(string(d.Bytes()), strings.Repeat("-", 48)) {
		t.Error("separator does not span configured width")
	}
}

func TestDefaultWidth(t *testing.T) {
	d := NewDocument(0)
	if d.width != 32 {
		t.Errorf("width = %d, want 32", d.width)
	}
}
