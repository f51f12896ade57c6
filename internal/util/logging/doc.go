// Package logging builds the zap logger used by the CLI.
//
// Logs go to stderr so that tables and prompts on stdout stay readable.
// A log file can be added, in which case entries are teed into a
// size-rotated file.
package logging
