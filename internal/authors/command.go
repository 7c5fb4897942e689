package authors

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/migratekit/svn2git/internal/execshell"
	"github.com/migratekit/svn2git/internal/ui"
	"github.com/migratekit/svn2git/internal/utils"
)

const (
	commandUseConstant                      = "authors <SVN_URL>"
	commandShortDescriptionConstant         = "List the unique authors of a Subversion repository"
	commandLongDescriptionConstant          = "authors inspects the Subversion log of the provided repository URL and prints every distinct author name, one per line, in ascending order. The output seeds the authors mapping file consumed by migrate."
	serviceCreationErrorTemplateConstant    = "unable to construct author listing service: %w"
	authorListingErrorTemplateConstant      = "author listing failed: %w"
	authorOutputLineTemplateConstant        = "%s\n"
	usernameFlagNameConstant                = "username"
	usernameFlagUsageConstant               = "Subversion username supplied to svn log"
	repositoryURLArgumentIndexConstant      = 0
	expectedPositionalArgumentCountConstant = 1
)

// CommandConfiguration captures persisted configuration for author listing.
type CommandConfiguration struct {
	Username string `mapstructure:"username"`
}

// DefaultCommandConfiguration returns baseline configuration values for author listing.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}
}

// DefaultConfigurationValues exposes author listing defaults keyed for the configuration loader.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + usernameFlagNameConstant: defaults.Username,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Username = strings.TrimSpace(configuration.Username)
	return sanitized
}

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the authors Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     SubversionExecutor
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
}

type commandOptions struct {
	debugLoggingEnabled bool
	repositoryURL       string
	username            string
}

// Build constructs the authors command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(expectedPositionalArgumentCountConstant),
		RunE:          builder.runAuthors,
	}

	command.Flags().String(usernameFlagNameConstant, "", usernameFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runAuthors(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)

	logger := builder.resolveLogger(options.debugLoggingEnabled)

	executor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(executor)
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	authorNames, listingError := service.ListAuthors(command.Context(), ListOptions{
		RepositoryURL: options.repositoryURL,
		Username:      options.username,
	})
	if listingError != nil {
		return fmt.Errorf(authorListingErrorTemplateConstant, listingError)
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	for _, authorName := range authorNames {
		if _, writeError := fmt.Fprintf(outputWriter, authorOutputLineTemplateConstant, authorName); writeError != nil {
			return writeError
		}
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) commandOptions {
	configuration := builder.resolveConfiguration()

	debugEnabled := false
	username := configuration.Username
	if command != nil {
		contextAccessor := utils.NewCommandContextAccessor()
		if logLevel, available := contextAccessor.LogLevel(command.Context()); available {
			if strings.EqualFold(logLevel, string(utils.LogLevelDebug)) {
				debugEnabled = true
			}
		}
		if command.Flags().Changed(usernameFlagNameConstant) {
			flagValue, _ := command.Flags().GetString(usernameFlagNameConstant)
			username = strings.TrimSpace(flagValue)
		}
	}

	return commandOptions{
		debugLoggingEnabled: debugEnabled,
		repositoryURL:       strings.TrimSpace(arguments[repositoryURLArgumentIndexConstant]),
		username:            username,
	}
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

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (SubversionExecutor, error) {
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
