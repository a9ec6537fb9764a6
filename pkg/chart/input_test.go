package chart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

const sampleTOML = `ascendant = 215.42
instant = 2024-03-20T12:00:00Z
timezone = "Asia/Kolkata"

[bodies]
Sun = 340.21
Moon = 95.5
Rahu = 20.75

[[dashas]]
lord = "Ketu"
start = 2024-03-20T12:00:00Z
end = 2031-03-20T12:00:00Z
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInput(t *testing.T) {
	in, err := LoadInput(writeSample(t, sampleTOML))
	if err != nil {
		t.Fatalf("LoadInput: %v", err)
	}
	if in.Ascendant == nil || *in.Ascendant != 215.42 {
		t.Errorf("ascendant = %v", in.Ascendant)
	}
	if in.Timezone != "Asia/Kolkata" {
		t.Errorf("timezone = %q", in.Timezone)
	}
	if got := in.Bodies[zodiac.Moon]; got != 95.5 {
		t.Errorf("moon = %v, want 95.5", got)
	}
	if len(in.Dashas) != 1 || in.Dashas[0].Lord != "Ketu" {
		t.Errorf("dashas = %+v", in.Dashas)
	}
}

func TestLoadInputUnknownBody(t *testing.T) {
	path := writeSample(t, "[bodies]\nVulcan = 10.0\n")
	if _, err := LoadInput(path); !errors.Is(err, errors.ErrCodeInvalidBody) {
		t.Errorf("err = %v, want INVALID_BODY", err)
	}
}

func TestLoadInputMalformed(t *testing.T) {
	path := writeSample(t, "ascendant = [not toml")
	if _, err := LoadInput(path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestInputJSONRoundTrip(t *testing.T) {
	in := testInput()
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Input
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Timezone != in.Timezone || *back.Ascendant != *in.Ascendant {
		t.Errorf("round trip changed scalars: %+v", back)
	}
	if len(back.Bodies) != len(in.Bodies) {
		t.Fatalf("round trip changed body count: %d != %d", len(back.Bodies), len(in.Bodies))
	}
	for b, lon := range in.Bodies {
		if back.Bodies[b] != lon {
			t.Errorf("%v = %v, want %v", b, back.Bodies[b], lon)
		}
	}
}

func TestInputJSONRejectsUnknownBody(t *testing.T) {
	var in Input
	err := json.Unmarshal([]byte(`{"bodies":{"Vulcan": 1}}`), &in)
	if !errors.Is(err, errors.ErrCodeInvalidBody) {
		t.Errorf("err = %v, want INVALID_BODY", err)
	}
}
