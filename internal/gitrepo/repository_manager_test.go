package gitrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/migratekit/svn2git/internal/execshell"
	"github.com/migratekit/svn2git/internal/gitrepo"
)

const (
	repositoryPathConstant       = "/tmp/converted"
	subversionSourceURLConstant  = "https://svn.example.com/project"
	recordedArgumentsMessage     = "recorded git arguments"
	recordedDirectoryMessage     = "recorded working directory"
	expectedErrorMessageConstant = "expected validation error"
)

type recordingGitExecutor struct {
	executedDetails []execshell.CommandDetails
	standardOutput  string
}

func (executor *recordingGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.executedDetails = append(executor.executedDetails, details)
	return execshell.ExecutionResult{StandardOutput: executor.standardOutput}, nil
}

func TestNewRepositoryManagerRequiresExecutor(testInstance *testing.T) {
	manager, creationError := gitrepo.NewRepositoryManager(nil)
	require.Error(testInstance, creationError)
	require.Nil(testInstance, manager)
}

func TestCloneFromSubversionBuildsExpectedCommand(testInstance *testing.T) {
	testCases := []struct {
		name              string
		options           gitrepo.SubversionCloneOptions
		expectedArguments []string
	}{
		{
			name: "standard_layout",
			options: gitrepo.SubversionCloneOptions{
				SourceURL:       subversionSourceURLConstant,
				TargetDirectory: repositoryPathConstant,
				LayoutArguments: []string{"--stdlayout"},
			},
			expectedArguments: []string{"svn", "clone", "--prefix=", "--stdlayout", subversionSourceURLConstant, "."},
		},
		{
			name: "authors_file_and_username",
			options: gitrepo.SubversionCloneOptions{
				SourceURL:       subversionSourceURLConstant,
				TargetDirectory: repositoryPathConstant,
				AuthorsFilePath: "/tmp/authors.txt",
				Username:        "operator",
				LayoutArguments: []string{"--trunk=mainline"},
			},
			expectedArguments: []string{"svn", "clone", "--prefix=", "--username=operator", "--authors-file=/tmp/authors.txt", "--trunk=mainline", subversionSourceURLConstant, "."},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			executor := &recordingGitExecutor{}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(subtestInstance, creationError)

			cloneError := manager.CloneFromSubversion(context.Background(), testCase.options)
			require.NoError(subtestInstance, cloneError)
			require.Len(subtestInstance, executor.executedDetails, 1)
			require.Equal(subtestInstance, testCase.expectedArguments, executor.executedDetails[0].Arguments, recordedArgumentsMessage)
			require.Equal(subtestInstance, repositoryPathConstant, executor.executedDetails[0].WorkingDirectory, recordedDirectoryMessage)
		})
	}
}

func TestCloneFromSubversionValidatesInputs(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	missingSourceError := manager.CloneFromSubversion(context.Background(), gitrepo.SubversionCloneOptions{TargetDirectory: repositoryPathConstant})
	require.Error(testInstance, missingSourceError, expectedErrorMessageConstant)

	missingTargetError := manager.CloneFromSubversion(context.Background(), gitrepo.SubversionCloneOptions{SourceURL: subversionSourceURLConstant})
	require.Error(testInstance, missingTargetError, expectedErrorMessageConstant)
	require.Empty(testInstance, executor.executedDetails)
}

func TestListReferencesParsesToolOutput(testInstance *testing.T) {
	executor := &recordingGitExecutor{standardOutput: "refs/remotes/tags/v1.0\nrefs/remotes/trunk\n\n"}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, creationError)

	referenceNames, listError := manager.ListReferences(context.Background(), repositoryPathConstant, "refs/remotes")
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []string{"refs/remotes/tags/v1.0", "refs/remotes/trunk"}, referenceNames)
	require.Equal(testInstance, []string{"for-each-ref", "--format=%(refname)", "refs/remotes"}, executor.executedDetails[0].Arguments, recordedArgumentsMessage)
}

func TestReferenceOperationsBuildExpectedCommands(testInstance *testing.T) {
	testCases := []struct {
		name              string
		operation         func(manager *gitrepo.RepositoryManager) error
		expectedArguments []string
	}{
		{
			name: "create_tag",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.CreateTag(context.Background(), repositoryPathConstant, "v1.0", "refs/remotes/tags/v1.0")
			},
			expectedArguments: []string{"tag", "v1.0", "refs/remotes/tags/v1.0"},
		},
		{
			name: "create_branch",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.CreateBranch(context.Background(), repositoryPathConstant, "feature", "refs/remotes/feature")
			},
			expectedArguments: []string{"branch", "feature", "refs/remotes/feature"},
		},
		{
			name: "delete_reference",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.DeleteReference(context.Background(), repositoryPathConstant, "refs/remotes/trunk")
			},
			expectedArguments: []string{"update-ref", "-d", "refs/remotes/trunk"},
		},
		{
			name: "set_local_configuration",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.SetLocalConfiguration(context.Background(), repositoryPathConstant, "user.name", "Migration Operator")
			},
			expectedArguments: []string{"config", "--local", "user.name", "Migration Operator"},
		},
		{
			name: "stage_file",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.StageFile(context.Background(), repositoryPathConstant, ".gitignore")
			},
			expectedArguments: []string{"add", ".gitignore"},
		},
		{
			name: "create_commit",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.CreateCommit(context.Background(), repositoryPathConstant, "Add ignore patterns")
			},
			expectedArguments: []string{"commit", "-m", "Add ignore patterns"},
		},
		{
			name: "add_remote",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.AddRemote(context.Background(), repositoryPathConstant, "origin", "git@github.com:owner/project.git")
			},
			expectedArguments: []string{"remote", "add", "origin", "git@github.com:owner/project.git"},
		},
		{
			name: "push_all_branches",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.PushAllBranches(context.Background(), repositoryPathConstant, "origin")
			},
			expectedArguments: []string{"push", "origin", "--all"},
		},
		{
			name: "push_all_tags",
			operation: func(manager *gitrepo.RepositoryManager) error {
				return manager.PushAllTags(context.Background(), repositoryPathConstant, "origin")
			},
			expectedArguments: []string{"push", "origin", "--tags"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			executor := &recordingGitExecutor{}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(subtestInstance, creationError)

			operationError := testCase.operation(manager)
			require.NoError(subtestInstance, operationError)
			require.Len(subtestInstance, executor.executedDetails, 1)
			require.Equal(subtestInstance, testCase.expectedArguments, executor.executedDetails[0].Arguments, recordedArgumentsMessage)
			require.Equal(subtestInstance, repositoryPathConstant, executor.executedDetails[0].WorkingDirectory, recordedDirectoryMessage)
		})
	}
}
