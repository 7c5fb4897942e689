// Package migrate converts a Subversion repository into a standalone Git
// repository: it clones the history through git-svn, reclassifies the
// remote-tracking references into real tags and local branches, configures
// the committer identity, seeds an ignore file, and optionally registers and
// pushes to a remote.
package migrate
