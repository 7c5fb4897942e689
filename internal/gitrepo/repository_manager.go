package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/migratekit/svn2git/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant        = "git executor not configured"
	svnSubcommandConstant                    = "svn"
	cloneSubcommandConstant                  = "clone"
	forEachRefSubcommandConstant             = "for-each-ref"
	tagSubcommandConstant                    = "tag"
	branchSubcommandConstant                 = "branch"
	updateRefSubcommandConstant              = "update-ref"
	configSubcommandConstant                 = "config"
	addSubcommandConstant                    = "add"
	commitSubcommandConstant                 = "commit"
	remoteSubcommandConstant                 = "remote"
	pushSubcommandConstant                   = "push"
	remoteAddSubcommandConstant              = "add"
	forEachRefFormatFlagConstant             = "--format=%(refname)"
	updateRefDeleteFlagConstant              = "-d"
	configLocalFlagConstant                  = "--local"
	commitMessageFlagConstant                = "-m"
	pushAllBranchesFlagConstant              = "--all"
	pushAllTagsFlagConstant                  = "--tags"
	cloneEmptyPrefixFlagConstant             = "--prefix="
	cloneAuthorsFileFlagTemplateConstant     = "--authors-file=%s"
	cloneUsernameFlagTemplateConstant        = "--username=%s"
	cloneTargetCurrentDirectoryConstant      = "."
	referenceListLineSeparatorConstant       = "\n"
	cloneSourceURLRequiredMessageConstant    = "subversion source URL required"
	cloneTargetDirectoryRequiredMessage      = "clone target directory required"
	referencePatternRequiredMessageConstant  = "reference pattern required"
	referenceNameRequiredMessageConstant     = "reference name required"
	tagNameRequiredMessageConstant           = "tag name required"
	branchNameRequiredMessageConstant        = "branch name required"
	configurationKeyRequiredMessageConstant  = "configuration key required"
	filePathRequiredMessageConstant          = "file path required"
	commitMessageRequiredMessageConstant     = "commit message required"
	remoteNameRequiredMessageConstant        = "remote name required"
	remoteURLRequiredMessageConstant         = "remote URL required"
)

var errGitExecutorMissing = errors.New(gitExecutorMissingMessageConstant)

// GitExecutor is the minimal command execution interface required from execshell.ShellExecutor.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// SubversionCloneOptions configures a git-svn clone invocation.
type SubversionCloneOptions struct {
	SourceURL       string
	TargetDirectory string
	AuthorsFilePath string
	Username        string
	LayoutArguments []string
}

// RepositoryManager performs structured Git operations through a GitExecutor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager validates dependencies and constructs a RepositoryManager.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, errGitExecutorMissing
	}
	return &RepositoryManager{executor: executor}, nil
}

// CloneFromSubversion runs git svn clone into the target directory.
//
// The empty --prefix keeps remote-tracking references directly under
// refs/remotes so the reclassification pass sees the classic layout.
func (manager *RepositoryManager) CloneFromSubversion(executionContext context.Context, options SubversionCloneOptions) error {
	trimmedSourceURL := strings.TrimSpace(options.SourceURL)
	if len(trimmedSourceURL) == 0 {
		return newValidationError(cloneSourceURLRequiredMessageConstant)
	}
	trimmedTargetDirectory := strings.TrimSpace(options.TargetDirectory)
	if len(trimmedTargetDirectory) == 0 {
		return newValidationError(cloneTargetDirectoryRequiredMessage)
	}

	cloneArguments := []string{svnSubcommandConstant, cloneSubcommandConstant, cloneEmptyPrefixFlagConstant}
	if trimmedUsername := strings.TrimSpace(options.Username); len(trimmedUsername) > 0 {
		cloneArguments = append(cloneArguments, fmt.Sprintf(cloneUsernameFlagTemplateConstant, trimmedUsername))
	}
	if trimmedAuthorsFile := strings.TrimSpace(options.AuthorsFilePath); len(trimmedAuthorsFile) > 0 {
		cloneArguments = append(cloneArguments, fmt.Sprintf(cloneAuthorsFileFlagTemplateConstant, trimmedAuthorsFile))
	}
	cloneArguments = append(cloneArguments, options.LayoutArguments...)
	cloneArguments = append(cloneArguments, trimmedSourceURL, cloneTargetCurrentDirectoryConstant)

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        cloneArguments,
		WorkingDirectory: trimmedTargetDirectory,
	})
	return executionError
}

// ListReferences enumerates full reference names matching the provided pattern in tool order.
func (manager *RepositoryManager) ListReferences(executionContext context.Context, repositoryPath string, referencePattern string) ([]string, error) {
	trimmedPattern := strings.TrimSpace(referencePattern)
	if len(trimmedPattern) == 0 {
		return nil, newValidationError(referencePatternRequiredMessageConstant)
	}

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{forEachRefSubcommandConstant, forEachRefFormatFlagConstant, trimmedPattern},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return nil, executionError
	}

	referenceNames := []string{}
	for _, outputLine := range strings.Split(executionResult.StandardOutput, referenceListLineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) == 0 {
			continue
		}
		referenceNames = append(referenceNames, trimmedLine)
	}
	return referenceNames, nil
}

// CreateTag creates a tag pointing at the provided reference.
func (manager *RepositoryManager) CreateTag(executionContext context.Context, repositoryPath string, tagName string, referenceName string) error {
	trimmedTagName := strings.TrimSpace(tagName)
	if len(trimmedTagName) == 0 {
		return newValidationError(tagNameRequiredMessageConstant)
	}
	trimmedReferenceName := strings.TrimSpace(referenceName)
	if len(trimmedReferenceName) == 0 {
		return newValidationError(referenceNameRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{tagSubcommandConstant, trimmedTagName, trimmedReferenceName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateBranch creates a local branch pointing at the provided reference.
func (manager *RepositoryManager) CreateBranch(executionContext context.Context, repositoryPath string, branchName string, referenceName string) error {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return newValidationError(branchNameRequiredMessageConstant)
	}
	trimmedReferenceName := strings.TrimSpace(referenceName)
	if len(trimmedReferenceName) == 0 {
		return newValidationError(referenceNameRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{branchSubcommandConstant, trimmedBranchName, trimmedReferenceName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// DeleteReference removes the provided reference from the repository.
func (manager *RepositoryManager) DeleteReference(executionContext context.Context, repositoryPath string, referenceName string) error {
	trimmedReferenceName := strings.TrimSpace(referenceName)
	if len(trimmedReferenceName) == 0 {
		return newValidationError(referenceNameRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{updateRefSubcommandConstant, updateRefDeleteFlagConstant, trimmedReferenceName},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// SetLocalConfiguration writes a repository-local configuration value.
func (manager *RepositoryManager) SetLocalConfiguration(executionContext context.Context, repositoryPath string, configurationKey string, configurationValue string) error {
	trimmedConfigurationKey := strings.TrimSpace(configurationKey)
	if len(trimmedConfigurationKey) == 0 {
		return newValidationError(configurationKeyRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{configSubcommandConstant, configLocalFlagConstant, trimmedConfigurationKey, configurationValue},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// StageFile stages the provided path for the next commit.
func (manager *RepositoryManager) StageFile(executionContext context.Context, repositoryPath string, filePath string) error {
	trimmedFilePath := strings.TrimSpace(filePath)
	if len(trimmedFilePath) == 0 {
		return newValidationError(filePathRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{addSubcommandConstant, trimmedFilePath},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// CreateCommit records a commit with the provided message.
func (manager *RepositoryManager) CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error {
	trimmedCommitMessage := strings.TrimSpace(commitMessage)
	if len(trimmedCommitMessage) == 0 {
		return newValidationError(commitMessageRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{commitSubcommandConstant, commitMessageFlagConstant, trimmedCommitMessage},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// AddRemote registers a remote with the provided URL.
func (manager *RepositoryManager) AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return newValidationError(remoteNameRequiredMessageConstant)
	}
	trimmedRemoteURL := strings.TrimSpace(remoteURL)
	if len(trimmedRemoteURL) == 0 {
		return newValidationError(remoteURLRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{remoteSubcommandConstant, remoteAddSubcommandConstant, trimmedRemoteName, trimmedRemoteURL},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

// PushAllBranches pushes every local branch to the provided remote.
func (manager *RepositoryManager) PushAllBranches(executionContext context.Context, repositoryPath string, remoteName string) error {
	return manager.pushWithFlag(executionContext, repositoryPath, remoteName, pushAllBranchesFlagConstant)
}

// PushAllTags pushes every tag to the provided remote.
func (manager *RepositoryManager) PushAllTags(executionContext context.Context, repositoryPath string, remoteName string) error {
	return manager.pushWithFlag(executionContext, repositoryPath, remoteName, pushAllTagsFlagConstant)
}

func (manager *RepositoryManager) pushWithFlag(executionContext context.Context, repositoryPath string, remoteName string, pushFlag string) error {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return newValidationError(remoteNameRequiredMessageConstant)
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{pushSubcommandConstant, trimmedRemoteName, pushFlag},
		WorkingDirectory: repositoryPath,
	})
	return executionError
}

func newValidationError(message string) error {
	return errors.New(message)
}
