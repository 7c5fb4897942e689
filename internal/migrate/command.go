package migrate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/migratekit/svn2git/internal/execshell"
	"github.com/migratekit/svn2git/internal/gitrepo"
	"github.com/migratekit/svn2git/internal/ui"
	"github.com/migratekit/svn2git/internal/utils"
	"github.com/migratekit/svn2git/internal/utils/flags"
	pathutils "github.com/migratekit/svn2git/internal/utils/path"
)

const (
	commandUseConstant              = "migrate <SVN_URL>"
	commandShortDescriptionConstant = "Migrate a Subversion repository to Git"
	commandLongDescriptionConstant  = "migrate clones the Subversion history through git-svn, promotes remote tag and branch references to native Git tags and local branches, configures the committer identity, seeds an ignore file, and optionally registers a remote and pushes all branches and tags."

	directoryFlagNameConstant   = "directory"
	directoryFlagUsageConstant  = "Local directory receiving the converted repository"
	userNameFlagNameConstant    = "user-name"
	userNameFlagUsageConstant   = "Committer name written to the local Git configuration"
	userEmailFlagNameConstant   = "user-email"
	userEmailFlagUsageConstant  = "Committer email written to the local Git configuration"
	authorsFileFlagNameConstant = "authors-file"
	authorsFileFlagUsage        = "Path to the authors mapping file consumed by git-svn"
	trunkFlagNameConstant       = "trunk"
	trunkFlagUsageConstant      = "Trunk path override inside the Subversion repository"
	tagsFlagNameConstant        = "tags"
	tagsFlagUsageConstant       = "Tags path override inside the Subversion repository"
	branchesFlagNameConstant    = "branches"
	branchesFlagUsageConstant   = "Branches path override inside the Subversion repository"
	ignoreFlagNameConstant      = "ignore"
	ignoreFlagUsageConstant     = "Ignore patterns appended to the generated ignore file"
	remoteFlagNameConstant      = "remote"
	remoteFlagUsageConstant     = "Remote URL registered as origin after conversion"
	pushFlagNameConstant        = "push"
	pushFlagUsageConstant       = "Push all branches and tags to the configured remote"
	usernameFlagNameConstant    = "username"
	usernameFlagUsageConstant   = "Subversion username supplied to git-svn"
	toggleTrueValueConstant     = "true"

	remoteURLValidationErrorTemplate       = "invalid remote URL: %w"
	serviceCreationErrorTemplateConstant   = "unable to construct migration service: %w"
	managerCreationErrorTemplateConstant   = "unable to construct repository manager: %w"
	migrationExecutionErrorTemplate        = "migration failed: %w"
	sourceURLArgumentIndexConstant         = 0
	expectedPositionalArgumentCountMigrate = 1
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the migrate Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     gitrepo.GitExecutor
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	HomeExpander                 *pathutils.HomeExpander
}

type commandOptions struct {
	debugLoggingEnabled bool
	migrationOptions    MigrationOptions
}

// Build constructs the migrate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(expectedPositionalArgumentCountMigrate),
		RunE:          builder.runMigrate,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().String(directoryFlagNameConstant, "", directoryFlagUsageConstant)
	command.Flags().String(userNameFlagNameConstant, "", userNameFlagUsageConstant)
	command.Flags().String(userEmailFlagNameConstant, "", userEmailFlagUsageConstant)
	command.Flags().String(authorsFileFlagNameConstant, "", authorsFileFlagUsage)
	command.Flags().String(trunkFlagNameConstant, "", trunkFlagUsageConstant)
	command.Flags().String(tagsFlagNameConstant, "", tagsFlagUsageConstant)
	command.Flags().String(branchesFlagNameConstant, "", branchesFlagUsageConstant)
	command.Flags().StringSlice(ignoreFlagNameConstant, defaults.IgnorePatterns, ignoreFlagUsageConstant)
	command.Flags().String(remoteFlagNameConstant, "", remoteFlagUsageConstant)
	var pushToggleTarget bool
	flags.AddToggleFlag(command.Flags(), &pushToggleTarget, pushFlagNameConstant, "", false, pushFlagUsageConstant)
	command.Flags().String(usernameFlagNameConstant, "", usernameFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runMigrate(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger(options.debugLoggingEnabled)

	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(executor)
	if managerError != nil {
		return fmt.Errorf(managerCreationErrorTemplateConstant, managerError)
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:            logger,
		RepositoryManager: repositoryManager,
	})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	if executionError := service.Execute(command.Context(), options.migrationOptions); executionError != nil {
		return fmt.Errorf(migrationExecutionErrorTemplate, executionError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (commandOptions, error) {
	configuration := builder.resolveConfiguration()
	homeExpander := builder.resolveHomeExpander()

	debugEnabled := false
	if command != nil {
		contextAccessor := utils.NewCommandContextAccessor()
		if logLevel, available := contextAccessor.LogLevel(command.Context()); available {
			if strings.EqualFold(logLevel, string(utils.LogLevelDebug)) {
				debugEnabled = true
			}
		}
	}

	stringFlagValue := func(flagName string, configuredValue string) string {
		if command != nil && command.Flags().Changed(flagName) {
			flagValue, _ := command.Flags().GetString(flagName)
			return strings.TrimSpace(flagValue)
		}
		return configuredValue
	}

	targetDirectory := homeExpander.Expand(stringFlagValue(directoryFlagNameConstant, configuration.TargetDirectory))
	authorsFilePath := homeExpander.Expand(stringFlagValue(authorsFileFlagNameConstant, configuration.AuthorsFilePath))

	ignorePatterns := configuration.IgnorePatterns
	if command != nil && command.Flags().Changed(ignoreFlagNameConstant) {
		flagPatterns, _ := command.Flags().GetStringSlice(ignoreFlagNameConstant)
		ignorePatterns = flagPatterns
	}

	pushAfterMigration := configuration.PushAfterMigration
	if command != nil && command.Flags().Changed(pushFlagNameConstant) {
		if pushFlag := command.Flags().Lookup(pushFlagNameConstant); pushFlag != nil {
			pushAfterMigration = strings.EqualFold(pushFlag.Value.String(), toggleTrueValueConstant)
		}
	}

	remoteURL := stringFlagValue(remoteFlagNameConstant, configuration.RemoteURL)
	if len(remoteURL) > 0 {
		if validationError := gitrepo.ValidateRemoteURL(remoteURL); validationError != nil {
			return commandOptions{}, fmt.Errorf(remoteURLValidationErrorTemplate, validationError)
		}
	}

	migrationOptions := MigrationOptions{
		SourceURL:       strings.TrimSpace(arguments[sourceURLArgumentIndexConstant]),
		TargetDirectory: targetDirectory,
		UserName:        stringFlagValue(userNameFlagNameConstant, configuration.UserName),
		UserEmail:       stringFlagValue(userEmailFlagNameConstant, configuration.UserEmail),
		AuthorsFilePath: authorsFilePath,
		Username:        stringFlagValue(usernameFlagNameConstant, configuration.Username),
		LayoutOverrides: LayoutOverrides{
			Trunk:    stringFlagValue(trunkFlagNameConstant, configuration.TrunkPath),
			Tags:     stringFlagValue(tagsFlagNameConstant, configuration.TagsPath),
			Branches: stringFlagValue(branchesFlagNameConstant, configuration.BranchesPath),
		},
		IgnorePatterns:     ignorePatterns,
		RemoteURL:          remoteURL,
		PushAfterMigration: pushAfterMigration,
	}

	return commandOptions{
		debugLoggingEnabled: debugEnabled,
		migrationOptions:    migrationOptions,
	}, nil
}

func (builder *CommandBuilder) resolveLogger(enableDebug bool) *zap.Logger {
	var logger *zap.Logger
	if builder.LoggerProvider != nil {
		logger = builder.LoggerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if enableDebug {
		logger = logger.WithOptions(zap.IncreaseLevel(zapcore.DebugLevel))
	}
	return logger
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		shellExecutor.SetEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}
	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	provided := builder.ConfigurationProvider()
	return provided.Sanitize()
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander != nil {
		return builder.HomeExpander
	}
	return pathutils.NewHomeExpander()
}
