package backdrop

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"
)

// PrefsStore is a Store backed by the application's Fyne preferences.
type PrefsStore struct {
	prefs fyne.Preferences
}

// NewPrefsStore wraps p as a Store.
func NewPrefsStore(p fyne.Preferences) *PrefsStore {
	return &PrefsStore{prefs: p}
}

// Get returns the string stored under key, or "" if nothing is stored.
func (s *PrefsStore) Get(key string) (string, error) {
	return s.prefs.StringWithFallback(key, ""), nil
}

// Set stores value under key.
func (s *PrefsStore) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}

// encodeRecord serializes a record for the store.
func encodeRecord(r Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}
	return string(data), nil
}

// decodeRecord parses a stored record. A record must always hold a usable
// location and positive dimensions together.
func decodeRecord(text string) (Record, error) {
	var r Record
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return Record{}, fmt.Errorf("decoding record: %w", err)
	}
	if !r.URI.Valid() {
		return Record{}, fmt.Errorf("decoding record: missing uri")
	}
	if !r.Dimensions.Valid() {
		return Record{}, fmt.Errorf("decoding record: invalid dimensions %vx%v", r.Dimensions.Width, r.Dimensions.Height)
	}
	return r, nil
}
