// Package intersight provides a client for the Cisco Intersight REST API
// covering the objects needed to provision server profiles from a template.
//
// # Architecture
//
// The package is organized into focused files:
//
//   - client.go: Manager interfaces and shared reference types
//   - real_client.go: client construction and options
//   - request.go: signed request execution, error mapping and metrics
//   - signer.go: HTTP Signature authentication with API keys
//   - directory.go: name to moid lookups
//   - profile.go: server profile clone, template link and reservation references
//   - policy.go: SAN connectivity policy profile lists
//   - pool.go: WWPN reservations in FC pools
//   - bulk.go: bulk MoCloner and MoMerger documents
//   - metrics.go: Prometheus request counters and latency histograms
//   - errors.go: APIError and NotFoundError classification
//
// # Authentication
//
// Every request carries Date and Digest headers and an Authorization
// header signed over "(request-target) host date digest". EC keys are
// advertised as hs2019, RSA keys as rsa-sha256.
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the Intersight error code and
// message. There are no retries: callers decide what a failure means.
//
// # Example Usage
//
//	key, err := intersight.LoadSigningKey("/path/to/SecretKey.txt")
//	if err != nil {
//	    return err
//	}
//	client, err := intersight.NewRealClient(keyID, key,
//	    intersight.WithTimeout(30*time.Second),
//	    intersight.WithMetrics(intersight.NewMetrics()),
//	)
//	if err != nil {
//	    return err
//	}
//	moids, err := client.ListMoidsByName(ctx, intersight.KindOrganization, "default")
package intersight
