package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// LengthField holds the raw length exactly as the client sent it, so that
// non-numeric input can be reported separately from out-of-range input.
// It accepts a JSON number or a JSON string.
type LengthField string

// NewLengthField returns a present length field holding raw.
func NewLengthField(raw string) *LengthField {
	l := LengthField(raw)
	return &l
}

// UnmarshalJSON keeps the raw text of a number or the contents of a string.
func (l *LengthField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = LengthField(s)
		return nil
	}
	if len(data) == 0 || !(data[0] == '-' || (data[0] >= '0' && data[0] <= '9')) {
		return errors.New("length must be a number or a string")
	}
	*l = LengthField(data)
	return nil
}

// GenerateRequest represents a password generation request.
// A nil Length means the default length; a present but empty one is invalid.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
// When Classes is non-empty it replaces the individual flags.
type GenerateRequest struct {
	Length    *LengthField `json:"length"`
	Uppercase *bool        `json:"uppercase"`
	Lowercase *bool        `json:"lowercase"`
	Numbers   *bool        `json:"numbers"`
	Symbols   *bool        `json:"symbols"`
	Classes   []string     `json:"classes,omitempty"`
	Source    string       `json:"-"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password     string `json:"password"`
	Length       int    `json:"length"`
	PoolSize     int    `json:"pool_size"`
	Entropy      int    `json:"entropy"`
	Strength     string `json:"strength"`
	Display      string `json:"display"`
	Guessability int    `json:"guessability"`
}
