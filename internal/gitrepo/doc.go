// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// It exposes RepositoryManager for structured Git operations such as reference
// enumeration, tag and branch creation, configuration, commits, and pushes.
// It also provides the remote URL validation consumed by the migration command.
package gitrepo
