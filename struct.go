package ein

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Campus struct {
	Name     string   `json:"name"`
	Prefixes []string `json:"prefixes"`
}

// Prefix 47 is reserved for future use. Prefixes 26, 27, 45, 46 and 47 were
// previously assigned by the Philadelphia campus, which is why 46 is listed
// under both internet and philadelphia.
var campuses = []Campus{
	{Name: "andover", Prefixes: []string{"10", "12"}},
	{Name: "atlanta", Prefixes: []string{"60", "67"}},
	{Name: "austin", Prefixes: []string{"50", "53"}},
	{Name: "brookhaven", Prefixes: []string{
		"01", "02", "03", "04", "05", "06", "11", "13", "14", "16", "21", "22",
		"23", "25", "34", "51", "52", "54", "55", "56", "57", "58", "59", "65",
	}},
	{Name: "cincinnati", Prefixes: []string{"30", "32", "35", "36", "37", "38", "61"}},
	{Name: "fresno", Prefixes: []string{"15", "24"}},
	{Name: "internet", Prefixes: []string{"20", "26", "27", "45", "46", "47"}},
	{Name: "kansas", Prefixes: []string{"40", "44"}},
	{Name: "memphis", Prefixes: []string{"94", "95"}},
	{Name: "ogden", Prefixes: []string{"80", "90"}},
	{Name: "philadelphia", Prefixes: []string{
		"33", "39", "41", "42", "43", "46", "48", "62", "63", "64", "66", "68",
		"71", "72", "73", "74", "75", "76", "77", "81", "82", "83", "84", "85",
		"86", "87", "88", "91", "92", "93", "98", "99",
	}},
	{Name: "sba", Prefixes: []string{"31"}},
}

type ValidationMode int

const (
	// ModeFormat accepts "12-3456789", "12 3456789" and "123456789" as given.
	ModeFormat ValidationMode = iota
	// ModeStrict accepts exactly nine contiguous digits.
	ModeStrict
	// ModeStrippedStrict drops hyphens and spaces, then applies ModeStrict.
	ModeStrippedStrict
)

func (m ValidationMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeStrippedStrict:
		return "stripped-strict"
	case ModeFormat:
		return "format"
	default:
		return fmt.Sprintf("ValidationMode(%d)", int(m))
	}
}

func (m *ValidationMode) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch strings.ToLower(value) {
	case "strict":
		*m = ModeStrict
	case "stripped-strict":
		*m = ModeStrippedStrict
	case "format":
		*m = ModeFormat
	default:
		return fmt.Errorf("invalid validation mode: %q", value)
	}
	return nil
}

func (m ValidationMode) MarshalJSON() ([]byte, error) {
	switch m {
	case ModeStrict, ModeStrippedStrict, ModeFormat:
		return json.Marshal(m.String())
	default:
		return nil, fmt.Errorf("invalid validation mode: %d", int(m))
	}
}

// ModeFromStrict maps a loosely typed "strict" flag to a mode: true is
// ModeStrict, false is ModeStrippedStrict, anything else (nil included) is
// ModeFormat.
func ModeFromStrict(strict any) ValidationMode {
	b, ok := strict.(bool)
	switch {
	case !ok:
		return ModeFormat
	case b:
		return ModeStrict
	default:
		return ModeStrippedStrict
	}
}

type Options struct {
	Mode ValidationMode `json:"mode"`
}

// UnmarshalJSON accepts either {"mode": "<name>"} or the {"strict": <any>}
// form. "mode" wins when both are present.
func (o *Options) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["mode"]; ok {
		return json.Unmarshal(raw, &o.Mode)
	}

	var strict any
	if raw, ok := fields["strict"]; ok {
		if err := json.Unmarshal(raw, &strict); err != nil {
			return err
		}
	}
	o.Mode = ModeFromStrict(strict)
	return nil
}
