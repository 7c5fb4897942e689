package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/migratekit/svn2git/internal/gitrepo"
)

const (
	sourceURLFieldNameConstant       = "source_url"
	targetDirectoryFieldNameConstant = "target_directory"
	userNameFieldNameConstant        = "user_name"
	userEmailFieldNameConstant       = "user_email"
	authorsFileFieldNameConstant     = "authors_file"

	requiredFieldMessageConstant = "value required"

	gitignoreFileNameConstant      = ".gitignore"
	ignoreCommitMessageConstant    = "Add ignore file"
	userNameConfigurationKey       = "user.name"
	userEmailConfigurationKey      = "user.email"
	migrationRemoteNameConstant    = "origin"
	targetDirectoryPermissionsMode = 0o755

	repositoryManagerMissingMessageConstant = "repository manager not configured"

	directoryCreationErrorTemplateConstant = "unable to create target directory: %w"
	cloneErrorTemplateConstant             = "subversion clone failed: %w"
	reclassificationErrorTemplateConstant  = "reference reclassification failed: %w"
	identityErrorTemplateConstant          = "unable to configure committer identity: %w"
	ignoreFileErrorTemplateConstant        = "unable to write ignore file: %w"
	ignoreCommitErrorTemplateConstant      = "unable to commit ignore file: %w"
	remoteRegistrationErrorTemplate        = "unable to register remote: %w"
	pushErrorTemplateConstant              = "push to remote failed: %w"

	cloneStartedMessageConstant            = "Cloning Subversion repository"
	reclassificationStartedMessageConstant = "Reclassifying remote references"
	identityConfiguredMessageConstant      = "Configured committer identity"
	ignoreFileCommittedMessageConstant     = "Committed ignore file"
	remoteRegisteredMessageConstant        = "Registered remote"
	pushCompletedMessageConstant           = "Pushed branches and tags"
	migrationCompletedMessageConstant      = "Migration completed"

	remoteURLFieldConstant  = "remote_url"
	ignorePatternCountField = "ignore_patterns"
)

// InvalidInputError describes migration option validation failures.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", inputError.FieldName, inputError.Message)
}

var errRepositoryManagerMissing = errors.New(repositoryManagerMissingMessageConstant)

// RepositoryOperations is the subset of gitrepo.RepositoryManager the
// migration workflow depends on.
type RepositoryOperations interface {
	ReferenceManager
	CloneFromSubversion(executionContext context.Context, options gitrepo.SubversionCloneOptions) error
	SetLocalConfiguration(executionContext context.Context, repositoryPath string, configurationKey string, configurationValue string) error
	StageFile(executionContext context.Context, repositoryPath string, filePath string) error
	CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error
	AddRemote(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
	PushAllBranches(executionContext context.Context, repositoryPath string, remoteName string) error
	PushAllTags(executionContext context.Context, repositoryPath string, remoteName string) error
}

// ServiceDependencies describes required collaborators for migration.
type ServiceDependencies struct {
	Logger            *zap.Logger
	RepositoryManager RepositoryOperations
}

// MigrationOptions configures the migrate workflow.
type MigrationOptions struct {
	SourceURL          string
	TargetDirectory    string
	UserName           string
	UserEmail          string
	AuthorsFilePath    string
	Username           string
	LayoutOverrides    LayoutOverrides
	IgnorePatterns     []string
	RemoteURL          string
	PushAfterMigration bool
}

// Service orchestrates the Subversion to Git migration workflow.
type Service struct {
	logger            *zap.Logger
	repositoryManager RepositoryOperations
	reclassifier      *ReferenceReclassifier
}

// NewService constructs a Service with the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, errRepositoryManagerMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reclassifier, reclassifierError := NewReferenceReclassifier(dependencies.RepositoryManager)
	if reclassifierError != nil {
		return nil, reclassifierError
	}

	service := &Service{
		logger:            logger,
		repositoryManager: dependencies.RepositoryManager,
		reclassifier:      reclassifier,
	}

	return service, nil
}

// Execute performs the migration workflow. Steps run strictly in order and
// the first failure stops forward progress with partial state left on disk.
func (service *Service) Execute(executionContext context.Context, options MigrationOptions) error {
	if validationError := service.validateOptions(options); validationError != nil {
		return validationError
	}

	if directoryError := os.MkdirAll(options.TargetDirectory, targetDirectoryPermissionsMode); directoryError != nil {
		return fmt.Errorf(directoryCreationErrorTemplateConstant, directoryError)
	}

	service.logger.Info(
		cloneStartedMessageConstant,
		zap.String(sourceURLFieldNameConstant, options.SourceURL),
		zap.String(targetDirectoryFieldNameConstant, options.TargetDirectory),
	)
	cloneError := service.repositoryManager.CloneFromSubversion(executionContext, gitrepo.SubversionCloneOptions{
		SourceURL:       options.SourceURL,
		TargetDirectory: options.TargetDirectory,
		AuthorsFilePath: options.AuthorsFilePath,
		Username:        options.Username,
		LayoutArguments: BuildCloneLayoutArguments(options.LayoutOverrides),
	})
	if cloneError != nil {
		return fmt.Errorf(cloneErrorTemplateConstant, cloneError)
	}

	service.logger.Info(
		reclassificationStartedMessageConstant,
		zap.String(targetDirectoryFieldNameConstant, options.TargetDirectory),
	)
	if reclassificationError := service.reclassifier.Reclassify(executionContext, options.TargetDirectory); reclassificationError != nil {
		return fmt.Errorf(reclassificationErrorTemplateConstant, reclassificationError)
	}

	if identityError := service.configureIdentity(executionContext, options); identityError != nil {
		return identityError
	}

	if len(options.IgnorePatterns) > 0 {
		if ignoreError := service.commitIgnoreFile(executionContext, options); ignoreError != nil {
			return ignoreError
		}
	}

	if len(options.RemoteURL) > 0 {
		if remoteError := service.repositoryManager.AddRemote(executionContext, options.TargetDirectory, migrationRemoteNameConstant, options.RemoteURL); remoteError != nil {
			return fmt.Errorf(remoteRegistrationErrorTemplate, remoteError)
		}
		service.logger.Info(
			remoteRegisteredMessageConstant,
			zap.String(remoteURLFieldConstant, options.RemoteURL),
		)

		if options.PushAfterMigration {
			if pushError := service.repositoryManager.PushAllBranches(executionContext, options.TargetDirectory, migrationRemoteNameConstant); pushError != nil {
				return fmt.Errorf(pushErrorTemplateConstant, pushError)
			}
			if pushError := service.repositoryManager.PushAllTags(executionContext, options.TargetDirectory, migrationRemoteNameConstant); pushError != nil {
				return fmt.Errorf(pushErrorTemplateConstant, pushError)
			}
			service.logger.Info(
				pushCompletedMessageConstant,
				zap.String(remoteURLFieldConstant, options.RemoteURL),
			)
		}
	}

	service.logger.Info(
		migrationCompletedMessageConstant,
		zap.String(targetDirectoryFieldNameConstant, options.TargetDirectory),
	)
	return nil
}

func (service *Service) validateOptions(options MigrationOptions) error {
	if len(strings.TrimSpace(options.SourceURL)) == 0 {
		return InvalidInputError{FieldName: sourceURLFieldNameConstant, Message: requiredFieldMessageConstant}
	}
	if len(strings.TrimSpace(options.TargetDirectory)) == 0 {
		return InvalidInputError{FieldName: targetDirectoryFieldNameConstant, Message: requiredFieldMessageConstant}
	}
	if len(strings.TrimSpace(options.UserName)) == 0 {
		return InvalidInputError{FieldName: userNameFieldNameConstant, Message: requiredFieldMessageConstant}
	}
	if len(strings.TrimSpace(options.UserEmail)) == 0 {
		return InvalidInputError{FieldName: userEmailFieldNameConstant, Message: requiredFieldMessageConstant}
	}
	if len(strings.TrimSpace(options.AuthorsFilePath)) == 0 {
		return InvalidInputError{FieldName: authorsFileFieldNameConstant, Message: requiredFieldMessageConstant}
	}
	return nil
}

func (service *Service) configureIdentity(executionContext context.Context, options MigrationOptions) error {
	if configurationError := service.repositoryManager.SetLocalConfiguration(executionContext, options.TargetDirectory, userNameConfigurationKey, options.UserName); configurationError != nil {
		return fmt.Errorf(identityErrorTemplateConstant, configurationError)
	}
	if configurationError := service.repositoryManager.SetLocalConfiguration(executionContext, options.TargetDirectory, userEmailConfigurationKey, options.UserEmail); configurationError != nil {
		return fmt.Errorf(identityErrorTemplateConstant, configurationError)
	}
	service.logger.Info(identityConfiguredMessageConstant)
	return nil
}

func (service *Service) commitIgnoreFile(executionContext context.Context, options MigrationOptions) error {
	ignoreFilePath := filepath.Join(options.TargetDirectory, gitignoreFileNameConstant)
	if appendError := appendIgnorePatterns(ignoreFilePath, options.IgnorePatterns); appendError != nil {
		return fmt.Errorf(ignoreFileErrorTemplateConstant, appendError)
	}

	if stageError := service.repositoryManager.StageFile(executionContext, options.TargetDirectory, gitignoreFileNameConstant); stageError != nil {
		return fmt.Errorf(ignoreCommitErrorTemplateConstant, stageError)
	}
	if commitError := service.repositoryManager.CreateCommit(executionContext, options.TargetDirectory, ignoreCommitMessageConstant); commitError != nil {
		return fmt.Errorf(ignoreCommitErrorTemplateConstant, commitError)
	}

	service.logger.Info(
		ignoreFileCommittedMessageConstant,
		zap.Int(ignorePatternCountField, len(options.IgnorePatterns)),
	)
	return nil
}

// appendIgnorePatterns adds one pattern per line to the ignore file, creating
// it when absent and never truncating existing content.
func appendIgnorePatterns(ignoreFilePath string, ignorePatterns []string) error {
	ignoreFile, openError := os.OpenFile(ignoreFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if openError != nil {
		return openError
	}
	defer ignoreFile.Close()

	for _, ignorePattern := range ignorePatterns {
		if _, writeError := fmt.Fprintln(ignoreFile, ignorePattern); writeError != nil {
			return writeError
		}
	}
	return nil
}
