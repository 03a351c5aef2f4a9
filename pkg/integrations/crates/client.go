package crates

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/typable/crates/pkg/integrations"
)

const (
	// DefaultBaseURL is the crates.io API root.
	DefaultBaseURL = "https://crates.io/api/v1"

	// UserAgent identifies this tool to crates.io, which rejects anonymous clients.
	UserAgent = "crates (github.com/typable/crates)"
)

// Crate holds the metadata crates.io publishes for one crate.
//
// Homepage, Repository and Documentation are nil when the crate does not
// declare them. Every other field is required: decoding fails when one is
// missing or null.
type Crate struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Keywords         []string `json:"keywords"`
	MaxStableVersion string   `json:"max_stable_version"`
	MaxVersion       string   `json:"max_version"`
	Homepage         *string  `json:"homepage"`
	Repository       *string  `json:"repository"`
	Documentation    *string  `json:"documentation"`
}

// UnmarshalJSON decodes a crate record, rejecting records that lack a
// required field.
func (c *Crate) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name             *string   `json:"name"`
		Description      *string   `json:"description"`
		Keywords         *[]string `json:"keywords"`
		MaxStableVersion *string   `json:"max_stable_version"`
		MaxVersion       *string   `json:"max_version"`
		Homepage         *string   `json:"homepage"`
		Repository       *string   `json:"repository"`
		Documentation    *string   `json:"documentation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	required := []struct {
		key     string
		present bool
	}{
		{"name", raw.Name != nil},
		{"description", raw.Description != nil},
		{"keywords", raw.Keywords != nil},
		{"max_stable_version", raw.MaxStableVersion != nil},
		{"max_version", raw.MaxVersion != nil},
	}
	for _, r := range required {
		if !r.present {
			return fmt.Errorf("crate record: missing required field %q", r.key)
		}
	}

	*c = Crate{
		Name:             *raw.Name,
		Description:      *raw.Description,
		Keywords:         *raw.Keywords,
		MaxStableVersion: *raw.MaxStableVersion,
		MaxVersion:       *raw.MaxVersion,
		Homepage:         raw.Homepage,
		Repository:       raw.Repository,
		Documentation:    raw.Documentation,
	}
	return nil
}

// Result is the envelope returned by the crate endpoint.
// Crate is nil when no crate matches the requested identifier.
type Result struct {
	Crate *Crate `json:"crate"`
}

// Found reports whether the registry returned a crate record.
func (r *Result) Found() bool {
	return r != nil && r.Crate != nil
}

// Client provides access to the crates.io package registry API.
//
// Note: crates.io requires a User-Agent header; this client sets one automatically.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client against [DefaultBaseURL].
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against an alternative API root,
// such as a mirror or a test server. baseURL must not end in a slash.
func NewClientWithBaseURL(baseURL string) *Client {
	headers := map[string]string{
		"User-Agent": UserAgent,
	}
	return &Client{
		Client:  integrations.NewClient(headers),
		baseURL: baseURL,
	}
}

// FetchCrate retrieves metadata for a crate from crates.io.
//
// The id is inserted into the request path exactly as given, without
// escaping. A response without a crate record is not an error: the returned
// Result is non-nil and [Result.Found] reports false.
//
// Returns errors coded [errors.ErrCodeNetwork] for transport failures and
// [errors.ErrCodeDecode] when the body is not the expected JSON document.
// No retry is attempted.
//
// [errors.ErrCodeNetwork]: github.com/typable/crates/pkg/errors.ErrCodeNetwork
// [errors.ErrCodeDecode]: github.com/typable/crates/pkg/errors.ErrCodeDecode
func (c *Client) FetchCrate(ctx context.Context, id string) (*Result, error) {
	var data Result
	if err := c.Get(ctx, c.CrateURL(id), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CrateURL returns the endpoint queried for id.
func (c *Client) CrateURL(id string) string {
	return fmt.Sprintf("%s/crates/%s", c.baseURL, id)
}
