package keys

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSecret_Redaction(t *testing.T) {
	s := NewSecret("//Alice///hunter2")

	for _, rendered := range []string{
		fmt.Sprintf("%v", s),
		fmt.Sprintf("%s", s),
		fmt.Sprintf("%+v", s),
		fmt.Sprintf("%#v", s),
		fmt.Sprint(s),
	} {
		if strings.Contains(rendered, "Alice") || strings.Contains(rendered, "hunter2") {
			t.Fatalf("secret leaked through formatting: %q", rendered)
		}
		if rendered != "<redacted>" {
			t.Errorf("rendered = %q, want <redacted>", rendered)
		}
	}
}

func TestSecret_JSONRedaction(t *testing.T) {
	s := NewSecret("//Alice")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != `"<redacted>"` {
		t.Errorf("marshaled = %s, want \"<redacted>\"", data)
	}

	// Secrets inside larger payloads stay redacted too.
	data, err = json.Marshal(map[string]interface{}{"suri": s})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(data), "Alice") {
		t.Errorf("secret leaked through JSON: %s", data)
	}
}

func TestSecret_Expose(t *testing.T) {
	s := NewSecret("//Alice")
	if s.Expose() != "//Alice" {
		t.Errorf("Expose() = %q, want %q", s.Expose(), "//Alice")
	}
}

func TestSecret_Zero(t *testing.T) {
	s := NewSecret("//Alice")
	s.Zero()

	exposed := s.Expose()
	if len(exposed) != len("//Alice") {
		t.Fatalf("zeroed length = %d, want %d", len(exposed), len("//Alice"))
	}
	for i := 0; i < len(exposed); i++ {
		if exposed[i] != 0 {
			t.Fatalf("byte %d not zeroed: %q", i, exposed)
		}
	}
}
