// Package authors extracts the unique Subversion author names referenced by a
// repository's history so operators can prepare an authors mapping file before
// a migration.
package authors
