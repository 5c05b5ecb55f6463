// Package command provides CLI command definitions for ossd.
//
// It uses urfave/cli/v2 for command parsing. Every command loads the
// configuration, builds a logger tagged with a fresh run ID and, when
// metrics.textfile is set, writes run metrics on completion.
package command
