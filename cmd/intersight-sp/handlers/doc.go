// Package handlers implements the business logic of the CLI commands.
//
// Handlers wire settings, the inventory, the Intersight client and the
// provisioning phases together. Dependencies are created through package
// level factory variables so tests can replace them.
package handlers
