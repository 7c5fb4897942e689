// Package cli assembles the svn2git command hierarchy, configuration
// loading, and structured logging shared by every subcommand.
package cli
