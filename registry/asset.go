package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Asset is one registered vehicle. ID is the exact world-state key the
// record is stored under.
type Asset struct {
	ID         string `json:"id"`
	Model      string `json:"model"`
	Color      string `json:"color"`
	Owner      string `json:"owner"`
	Year       int    `json:"year"`
	VIN        string `json:"vin"`
	EngineType string `json:"engineType"`
	Mileage    int    `json:"mileage"`
}

var (
	// ErrAlreadyExists reports a create against a live key.
	ErrAlreadyExists = errors.New("asset already exists")
	// ErrNotFound reports an operation against an absent key.
	ErrNotFound = errors.New("asset not found")
	// ErrMalformed reports input that cannot be parsed into a valid asset.
	ErrMalformed = errors.New("malformed asset")
)

// ParseAsset decodes a client-supplied JSON document into an Asset. Unknown
// fields, trailing content and missing required fields are rejected before
// any state access.
func ParseAsset(doc string) (*Asset, error) {
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.DisallowUnknownFields()

	var a Asset
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after asset document", ErrMalformed)
	}

	a.ID = strings.TrimSpace(a.ID)
	a.Owner = strings.TrimSpace(a.Owner)
	if a.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrMalformed)
	}
	if a.Owner == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrMalformed)
	}
	return &a, nil
}

// Record is one world-state entry returned by GetAllAssets. Entries that do
// not decode as an Asset are carried verbatim in Raw rather than dropped.
type Record struct {
	Asset *Asset `json:"asset,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// MarshalJSON emits the decoded asset where one exists, otherwise the raw
// stored text, so listings keep the shape clients stored.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Asset != nil {
		return json.Marshal(r.Asset)
	}
	return json.Marshal(r.Raw)
}
