package maven

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/matzehuels/libfinder/pkg/integrations"
)

// DefaultBaseURL is the Maven Central Solr search endpoint.
const DefaultBaseURL = "https://search.maven.org/solrsearch/select"

// Artifact is the best match Maven Central returned for a name/version query.
//
// ID is the coordinate exactly as the index reports it, normally
// "groupId:artifactId:version". GroupID, ArtifactID and Version are filled
// from the doc fields when present, otherwise parsed from ID.
type Artifact struct {
	ID         string
	GroupID    string
	ArtifactID string
	Version    string
}

// Coordinate returns the Maven coordinate string as reported by the index.
func (a *Artifact) Coordinate() string {
	return a.ID
}

// Client provides access to the Maven Central search API.
//
// Client performs no caching and no retries. It is safe for concurrent use,
// although lib-finder only ever issues one request at a time.
type Client struct {
	*integrations.Client
	baseURL string
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL points the client at a different search endpoint.
// An empty url keeps the default.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sends requests through hc instead of the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.Client = c.Client.WithHTTPClient(hc)
	}
}

// NewClient creates a Maven Central search client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		Client:  integrations.NewClient(nil),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search looks up the artifact named name at exactly version and returns the
// first document of the result list. Ranking is Maven Central's own; no
// further tie-break is applied.
//
// The query is "a:<name> AND v:<version>". It is form-encoded as the q
// parameter, so '&', '+' and spaces in a name reach the index literally
// instead of splitting the query string. Solr syntax characters such as ':'
// are not escaped and are interpreted by the index.
//
// Returns:
//   - [integrations.ErrNotFound] if the index reports no match
//   - [integrations.ErrStatus] for a non-200 response
//   - [integrations.ErrMalformedResponse] if the body lacks the response
//     object, or claims matches without a usable first document
//   - [integrations.ErrNetwork] for transport failures
func (c *Client) Search(ctx context.Context, name, version string) (*Artifact, error) {
	var resp searchResponse
	if err := c.Get(ctx, c.searchURL(name, version), &resp); err != nil {
		return nil, fmt.Errorf("search %s %s: %w", name, version, err)
	}
	return resp.best(name, version)
}

func (c *Client) searchURL(name, version string) string {
	q := url.Values{}
	q.Set("q", Query(name, version))
	return c.baseURL + "?" + q.Encode()
}

// Query builds the Solr query matching an exact artifact name and version.
func Query(name, version string) string {
	return fmt.Sprintf("a:%s AND v:%s", name, version)
}

// ParseCoordinate splits a "groupId:artifactId:version" coordinate.
// A two-part "groupId:artifactId" coordinate is accepted with an empty version.
func ParseCoordinate(coord string) (groupID, artifactID, version string, err error) {
	parts := strings.Split(coord, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", fmt.Errorf("invalid maven coordinate %q (expected groupId:artifactId[:version])", coord)
	}
	if len(parts) > 2 {
		version = parts[len(parts)-1]
	}
	return parts[0], parts[1], version, nil
}

type searchResponse struct {
	Response *struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	ID         string `json:"id"`
	GroupID    string `json:"g"`
	ArtifactID string `json:"a"`
	Version    string `json:"v"`
}

func (r *searchResponse) best(name, version string) (*Artifact, error) {
	if r.Response == nil {
		return nil, fmt.Errorf("%w: missing response object", integrations.ErrMalformedResponse)
	}
	if r.Response.NumFound == 0 {
		return nil, fmt.Errorf("%w: maven artifact %s %s", integrations.ErrNotFound, name, version)
	}
	if len(r.Response.Docs) == 0 {
		return nil, fmt.Errorf("%w: numFound=%d but no docs", integrations.ErrMalformedResponse, r.Response.NumFound)
	}

	doc := r.Response.Docs[0]
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: first doc has no id", integrations.ErrMalformedResponse)
	}

	a := &Artifact{ID: doc.ID, GroupID: doc.GroupID, ArtifactID: doc.ArtifactID, Version: doc.Version}
	if a.GroupID == "" || a.ArtifactID == "" {
		if g, art, v, err := ParseCoordinate(doc.ID); err == nil {
			a.GroupID, a.ArtifactID = g, art
			if a.Version == "" {
				a.Version = v
			}
		}
	}
	return a, nil
}
