package chart

import (
	"encoding/json"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rsharan/jyotish/pkg/aspect"
	"github.com/rsharan/jyotish/pkg/errors"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

// inputDoc is the serialized form of Input shared by the TOML file
// format and the JSON API body. Body longitudes are keyed by name so
// input files stay readable and bodies the ephemeris does not support
// can simply be left out.
type inputDoc struct {
	Ascendant *float64           `toml:"ascendant" json:"ascendant"`
	Bodies    map[string]float64 `toml:"bodies" json:"bodies"`
	Instant   time.Time          `toml:"instant" json:"instant"`
	Timezone  string             `toml:"timezone" json:"timezone"`
	Aspects   []aspect.Record    `toml:"-" json:"aspects,omitempty"`
	Dashas    []DashaPeriod      `toml:"dashas" json:"dashas,omitempty"`
}

// fromDoc resolves body names and assembles an Input. Unknown body
// names are an input-contract violation.
func fromDoc(doc inputDoc) (Input, error) {
	in := Input{
		Ascendant: doc.Ascendant,
		Instant:   doc.Instant,
		Timezone:  doc.Timezone,
		Aspects:   doc.Aspects,
		Dashas:    doc.Dashas,
	}
	if len(doc.Bodies) > 0 {
		in.Bodies = make(map[zodiac.Body]float64, len(doc.Bodies))
		for name, lon := range doc.Bodies {
			b, ok := zodiac.ParseBody(name)
			if !ok || b == zodiac.Ascendant {
				return Input{}, errors.New(errors.ErrCodeInvalidBody, "unknown body %q", name)
			}
			in.Bodies[b] = lon
		}
	}
	return in, nil
}

func toDoc(in Input) inputDoc {
	doc := inputDoc{
		Ascendant: in.Ascendant,
		Instant:   in.Instant,
		Timezone:  in.Timezone,
		Aspects:   in.Aspects,
		Dashas:    in.Dashas,
	}
	if len(in.Bodies) > 0 {
		doc.Bodies = make(map[string]float64, len(in.Bodies))
		for b, lon := range in.Bodies {
			doc.Bodies[b.String()] = lon
		}
	}
	return doc
}

// LoadInput reads a chart input from a TOML file.
//
// The expected shape:
//
//	ascendant = 215.42
//	instant = 2024-03-20T12:00:00Z
//	timezone = "Asia/Kolkata"
//
//	[bodies]
//	Sun = 340.21
//	Moon = 95.5
func LoadInput(path string) (Input, error) {
	var doc inputDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return Input{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse chart input %s", path)
	}
	return fromDoc(doc)
}

// MarshalJSON serializes the input with bodies keyed by name.
func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(toDoc(in))
}

// UnmarshalJSON parses the named-body form produced by MarshalJSON and
// accepted by the HTTP API.
func (in *Input) UnmarshalJSON(data []byte) error {
	var doc inputDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse chart input")
	}
	parsed, err := fromDoc(doc)
	if err != nil {
		return err
	}
	*in = parsed
	return nil
}
