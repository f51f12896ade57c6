// Package directory resolves the names in an inventory to Intersight moids.
//
// Lookups filter by exact name. An empty result is a *intersight.NotFoundError;
// several results are accepted with a warning and the first one wins. Nothing
// is cached, so every call is one GET against the API.
package directory
