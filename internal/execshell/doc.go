// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines abstractions used throughout svn2git
// to run git and svn with explicit argument vectors in a testable manner.
package execshell
