package profile

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidJSON = errors.New("profile document is not valid JSON")
	ErrNotObject   = errors.New("profile document must be a JSON object")
)

// Document is a stored profile exactly as the client sent it, held in compact
// form. Unknown fields are kept and missing fields stay missing; the server
// never merges it with Default.
type Document json.RawMessage

// Parse validates data as a JSON object and returns it in compact form.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, ErrInvalidJSON
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, err
	}
	return Document(buf.Bytes()), nil
}

// FromProfile encodes a typed profile as a Document.
func FromProfile(p Profile) (Document, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// DefaultDocument is Default encoded as a Document.
func DefaultDocument() Document {
	doc, err := FromProfile(Default())
	if err != nil {
		// Default is a fixed value of plain structs; encoding cannot fail.
		panic(err)
	}
	return doc
}

// Profile decodes the typed view. Fields the client omitted come back as zero values.
func (d Document) Profile() (Profile, error) {
	var p Profile
	if err := json.Unmarshal(d, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// PlayerName returns playerData.name when present, for logging.
func (d Document) PlayerName() string {
	var probe struct {
		PlayerData struct {
			Name string `json:"name"`
		} `json:"playerData"`
	}
	if err := json.Unmarshal(d, &probe); err != nil {
		return ""
	}
	return probe.PlayerData.Name
}

// MarshalJSON emits the stored bytes unchanged.
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON accepts only JSON objects.
func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
