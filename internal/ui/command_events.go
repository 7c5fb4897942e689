package ui

import (
	"go.uber.org/zap"

	"github.com/migratekit/svn2git/internal/execshell"
)

// ConsoleCommandEventLogger surfaces command lifecycle events as human-readable log lines.
type ConsoleCommandEventLogger struct {
	logger           *zap.Logger
	messageFormatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console observer writing through the provided logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, messageFormatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted logs the beginning of command execution.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	eventLogger.logger.Info(eventLogger.messageFormatter.BuildStartedMessage(command))
}

// CommandCompleted logs the outcome of a finished command.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if result.ExitCode != 0 {
		eventLogger.logger.Warn(eventLogger.messageFormatter.BuildFailureMessage(command, result))
		return
	}
	eventLogger.logger.Info(eventLogger.messageFormatter.BuildSuccessMessage(command))
}

// CommandExecutionFailed logs failures that prevented a command from producing a result.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	eventLogger.logger.Error(eventLogger.messageFormatter.BuildExecutionFailureMessage(command, failure))
}
