// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// Each registry has its own subpackage; currently only [maven] exists and it
// talks to the Maven Central search API.
//
// # Shared Infrastructure
//
// The [Client] type holds the behaviour every registry client needs: an
// [http.Client], default headers, JSON decoding and the
// mapping from HTTP status codes to sentinel errors:
//
//   - 200: success
//   - 404: [ErrNotFound]
//   - any other status: [ErrStatus]
//   - transport failure: [ErrNetwork]
//   - undecodable body: [ErrMalformedResponse]
//
// Requests are never retried and responses are never cached; one call means
// one round trip.
//
// [maven]: github.com/matzehuels/libfinder/pkg/integrations/maven
package integrations
