// Package maven provides an HTTP client for the Maven Central search API.
//
// # Overview
//
// This package looks up artifacts on Maven Central
// (https://search.maven.org) by exact artifact name and version, the two
// pieces of information recoverable from a jar file name.
//
// # Usage
//
//	client := maven.NewClient()
//
//	artifact, err := client.Search(ctx, "commons-lang3", "3.12.0")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // nothing published under that name and version
//	}
//
//	fmt.Println(artifact.Coordinate()) // org.apache.commons:commons-lang3:3.12.0
//
// # Response Shape
//
// The search endpoint answers with
//
//	{"response": {"numFound": 1, "docs": [{"id": "g:a:v", ...}]}}
//
// and [Client.Search] returns the first doc. A body missing the response
// object, or reporting matches without docs, is reported as
// [integrations.ErrMalformedResponse] rather than a panic or a silent miss.
package maven
