package migrate

import (
	"context"
	"errors"
	"strings"
)

const (
	tagReferencePatternConstant     = "refs/remotes/tags"
	remoteReferencePatternConstant  = "refs/remotes"
	tagReferencePrefixConstant      = "refs/remotes/tags/"
	remoteReferencePrefixConstant   = "refs/remotes/"
	trunkReferenceShortNameConstant = "trunk"

	referenceManagerMissingMessageConstant = "reference manager not configured"
)

var errReferenceManagerMissing = errors.New(referenceManagerMissingMessageConstant)

// ReferenceManager is the subset of gitrepo.RepositoryManager needed to
// reclassify remote-tracking references.
type ReferenceManager interface {
	ListReferences(executionContext context.Context, repositoryPath string, referencePattern string) ([]string, error)
	CreateTag(executionContext context.Context, repositoryPath string, tagName string, referenceName string) error
	CreateBranch(executionContext context.Context, repositoryPath string, branchName string, referenceName string) error
	DeleteReference(executionContext context.Context, repositoryPath string, referenceName string) error
}

// ReferenceReclassifier promotes git-svn remote-tracking references into
// proper tags and local branches.
type ReferenceReclassifier struct {
	referenceManager ReferenceManager
}

// NewReferenceReclassifier validates dependencies and constructs a ReferenceReclassifier.
func NewReferenceReclassifier(referenceManager ReferenceManager) (*ReferenceReclassifier, error) {
	if referenceManager == nil {
		return nil, errReferenceManagerMissing
	}
	return &ReferenceReclassifier{referenceManager: referenceManager}, nil
}

// Reclassify converts every tag-category reference into a real tag and every
// remaining remote-tracking reference into a local branch, deleting the
// original reference after each promotion. The trunk reference is deleted
// without creating a branch because git-svn already checked it out as the
// initial local branch.
func (reclassifier *ReferenceReclassifier) Reclassify(executionContext context.Context, repositoryPath string) error {
	if reclassificationError := reclassifier.reclassifyTags(executionContext, repositoryPath); reclassificationError != nil {
		return reclassificationError
	}
	return reclassifier.reclassifyBranches(executionContext, repositoryPath)
}

func (reclassifier *ReferenceReclassifier) reclassifyTags(executionContext context.Context, repositoryPath string) error {
	tagReferenceNames, listError := reclassifier.referenceManager.ListReferences(executionContext, repositoryPath, tagReferencePatternConstant)
	if listError != nil {
		return listError
	}

	for _, tagReferenceName := range tagReferenceNames {
		shortTagName := strings.TrimPrefix(tagReferenceName, tagReferencePrefixConstant)
		if creationError := reclassifier.referenceManager.CreateTag(executionContext, repositoryPath, shortTagName, tagReferenceName); creationError != nil {
			return creationError
		}
		if deletionError := reclassifier.referenceManager.DeleteReference(executionContext, repositoryPath, tagReferenceName); deletionError != nil {
			return deletionError
		}
	}
	return nil
}

func (reclassifier *ReferenceReclassifier) reclassifyBranches(executionContext context.Context, repositoryPath string) error {
	remoteReferenceNames, listError := reclassifier.referenceManager.ListReferences(executionContext, repositoryPath, remoteReferencePatternConstant)
	if listError != nil {
		return listError
	}

	for _, remoteReferenceName := range remoteReferenceNames {
		if strings.HasPrefix(remoteReferenceName, tagReferencePrefixConstant) {
			continue
		}
		shortBranchName := strings.TrimPrefix(remoteReferenceName, remoteReferencePrefixConstant)
		if shortBranchName != trunkReferenceShortNameConstant {
			if creationError := reclassifier.referenceManager.CreateBranch(executionContext, repositoryPath, shortBranchName, remoteReferenceName); creationError != nil {
				return creationError
			}
		}
		if deletionError := reclassifier.referenceManager.DeleteReference(executionContext, repositoryPath, remoteReferenceName); deletionError != nil {
			return deletionError
		}
	}
	return nil
}
