package chart

import (
	"encoding/json"
	"io"

	"github.com/rsharan/jyotish/pkg/cache"
)

// vargaRowJSON is the wire form of a divisional row: one named column
// per system so the renderer never depends on column order.
type vargaRowJSON struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"longitude"`
	D1        string  `json:"d1"`
	D2        string  `json:"d2"`
	D3        string  `json:"d3"`
	D7        string  `json:"d7"`
	D9        string  `json:"d9"`
	D10       string  `json:"d10"`
	D12       string  `json:"d12"`
	D30       string  `json:"d30"`
}

// MarshalJSON renders the row with sign names in fixed columns.
func (r VargaRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(vargaRowJSON{
		Body:      r.Body.String(),
		Longitude: r.Longitude,
		D1:        r.Signs[0].String(),
		D2:        r.Signs[1].String(),
		D3:        r.Signs[2].String(),
		D7:        r.Signs[3].String(),
		D9:        r.Signs[4].String(),
		D10:       r.Signs[5].String(),
		D12:       r.Signs[6].String(),
		D30:       r.Signs[7].String(),
	})
}

type nakshatraRowJSON struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Nakshatra string  `json:"nakshatra"`
	Pada      int     `json:"pada"`
	Lord      string  `json:"lord"`
}

// MarshalJSON flattens the mansion info into one table row.
func (r NakshatraRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(nakshatraRowJSON{
		Body:      r.Body.String(),
		Longitude: r.Longitude,
		Sign:      r.Sign.String(),
		Nakshatra: r.Nakshatra.Name,
		Pada:      r.Nakshatra.Pada,
		Lord:      r.Nakshatra.Lord.String(),
	})
}

type chartJSON struct {
	Varga      []VargaRow      `json:"varga"`
	Nakshatras []NakshatraRow  `json:"nakshatras"`
	Panchanga  json.RawMessage `json:"panchanga"`
	Aspects    json.RawMessage `json:"aspects"`
	Dashas     []DashaPeriod   `json:"dashas,omitempty"`
}

// MarshalJSON renders the full chart. Absent panchanga serializes as
// null; an empty aspect list serializes as [] so consumers can always
// iterate it.
func (c *Chart) MarshalJSON() ([]byte, error) {
	out := chartJSON{
		Varga:      c.Varga,
		Nakshatras: c.Nakshatras,
		Panchanga:  json.RawMessage("null"),
		Aspects:    json.RawMessage("[]"),
		Dashas:     c.Dashas,
	}
	if c.Panchanga != nil {
		data, err := json.Marshal(c.Panchanga)
		if err != nil {
			return nil, err
		}
		out.Panchanga = data
	}
	if len(c.Aspects) > 0 {
		data, err := json.Marshal(c.Aspects)
		if err != nil {
			return nil, err
		}
		out.Aspects = data
	}
	return json.Marshal(out)
}

// WriteJSON writes the chart as indented JSON. The encoding is
// deterministic: identical charts produce byte-identical output.
func WriteJSON(c *Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// InputHash returns the cache key material for an input: the sha256 hex
// digest of its canonical JSON form. encoding/json sorts the body map
// keys, so equal inputs always hash equally.
func InputHash(in Input) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
