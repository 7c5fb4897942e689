package migrate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/migratekit/svn2git/internal/migrate"
)

type recordingReferenceManager struct {
	referencesByPattern map[string][]string
	recordedOperations  []string
	tagCreationFailure  error
}

func (manager *recordingReferenceManager) ListReferences(_ context.Context, _ string, referencePattern string) ([]string, error) {
	manager.recordedOperations = append(manager.recordedOperations, fmt.Sprintf("list %s", referencePattern))
	return manager.referencesByPattern[referencePattern], nil
}

func (manager *recordingReferenceManager) CreateTag(_ context.Context, _ string, tagName string, referenceName string) error {
	if manager.tagCreationFailure != nil {
		return manager.tagCreationFailure
	}
	manager.recordedOperations = append(manager.recordedOperations, fmt.Sprintf("tag %s %s", tagName, referenceName))
	return nil
}

func (manager *recordingReferenceManager) CreateBranch(_ context.Context, _ string, branchName string, referenceName string) error {
	manager.recordedOperations = append(manager.recordedOperations, fmt.Sprintf("branch %s %s", branchName, referenceName))
	return nil
}

func (manager *recordingReferenceManager) DeleteReference(_ context.Context, _ string, referenceName string) error {
	manager.recordedOperations = append(manager.recordedOperations, fmt.Sprintf("delete %s", referenceName))
	return nil
}

func TestNewReferenceReclassifierRequiresManager(testInstance *testing.T) {
	reclassifier, creationError := migrate.NewReferenceReclassifier(nil)
	require.Error(testInstance, creationError)
	require.Nil(testInstance, reclassifier)
}

func TestReclassifyPromotesTagsAndBranches(testInstance *testing.T) {
	manager := &recordingReferenceManager{
		referencesByPattern: map[string][]string{
			"refs/remotes/tags": {
				"refs/remotes/tags/v1.0",
				"refs/remotes/tags/v2.0",
			},
			"refs/remotes": {
				"refs/remotes/feature",
				"refs/remotes/trunk",
			},
		},
	}

	reclassifier, creationError := migrate.NewReferenceReclassifier(manager)
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, reclassifier.Reclassify(context.Background(), "/tmp/converted"))
	require.Equal(testInstance, []string{
		"list refs/remotes/tags",
		"tag v1.0 refs/remotes/tags/v1.0",
		"delete refs/remotes/tags/v1.0",
		"tag v2.0 refs/remotes/tags/v2.0",
		"delete refs/remotes/tags/v2.0",
		"list refs/remotes",
		"branch feature refs/remotes/feature",
		"delete refs/remotes/feature",
		"delete refs/remotes/trunk",
	}, manager.recordedOperations)
}

func TestReclassifySkipsTagCategoryDuringBranchPass(testInstance *testing.T) {
	manager := &recordingReferenceManager{
		referencesByPattern: map[string][]string{
			"refs/remotes": {
				"refs/remotes/tags/v1.0",
				"refs/remotes/feature",
			},
		},
	}

	reclassifier, creationError := migrate.NewReferenceReclassifier(manager)
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, reclassifier.Reclassify(context.Background(), "/tmp/converted"))
	require.NotContains(testInstance, manager.recordedOperations, "branch tags/v1.0 refs/remotes/tags/v1.0")
	require.Contains(testInstance, manager.recordedOperations, "branch feature refs/remotes/feature")
}

func TestReclassifyTrunkExclusionIsCaseSensitive(testInstance *testing.T) {
	manager := &recordingReferenceManager{
		referencesByPattern: map[string][]string{
			"refs/remotes": {
				"refs/remotes/Trunk",
				"refs/remotes/trunk",
			},
		},
	}

	reclassifier, creationError := migrate.NewReferenceReclassifier(manager)
	require.NoError(testInstance, creationError)

	require.NoError(testInstance, reclassifier.Reclassify(context.Background(), "/tmp/converted"))
	require.Contains(testInstance, manager.recordedOperations, "branch Trunk refs/remotes/Trunk")
	require.NotContains(testInstance, manager.recordedOperations, "branch trunk refs/remotes/trunk")
	require.Contains(testInstance, manager.recordedOperations, "delete refs/remotes/trunk")
}

func TestReclassifyStopsOnFirstFailure(testInstance *testing.T) {
	tagFailure := errors.New("tag creation rejected")
	manager := &recordingReferenceManager{
		referencesByPattern: map[string][]string{
			"refs/remotes/tags": {
				"refs/remotes/tags/v1.0",
				"refs/remotes/tags/v2.0",
			},
		},
		tagCreationFailure: tagFailure,
	}

	reclassifier, creationError := migrate.NewReferenceReclassifier(manager)
	require.NoError(testInstance, creationError)

	reclassificationError := reclassifier.Reclassify(context.Background(), "/tmp/converted")
	require.ErrorIs(testInstance, reclassificationError, tagFailure)
	require.Equal(testInstance, []string{"list refs/remotes/tags"}, manager.recordedOperations)
}
