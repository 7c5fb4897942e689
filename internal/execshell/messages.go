package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	flagPrefixConstant                      = "-"
)

const (
	gitSubversionSubcommandNameConstant = "svn"
	gitCloneSubcommandNameConstant      = "clone"
	gitForEachRefSubcommandNameConstant = "for-each-ref"
	gitTagSubcommandNameConstant        = "tag"
	gitBranchSubcommandNameConstant     = "branch"
	gitUpdateRefSubcommandNameConstant  = "update-ref"
	gitConfigSubcommandNameConstant     = "config"
	gitAddSubcommandNameConstant        = "add"
	gitCommitSubcommandNameConstant     = "commit"
	gitRemoteSubcommandNameConstant     = "remote"
	gitPushSubcommandNameConstant       = "push"
	gitDeleteRefFlagConstant            = "-d"
	gitMessageFlagConstant              = "-m"
	gitPushAllFlagConstant              = "--all"
	gitPushTagsFlagConstant             = "--tags"
	gitRemoteAddSubcommandNameConstant  = "add"
	subversionLogSubcommandNameConstant = "log"
	pushAllBranchesLabelConstant        = "all branches"
	pushAllTagsLabelConstant            = "all tags"
)

const (
	gitSubversionCloneStartTemplateConstant              = "Cloning Subversion history from %s into %s"
	gitSubversionCloneSuccessTemplateConstant            = "Cloned Subversion history from %s into %s"
	gitSubversionCloneFailureTemplateConstant            = "Failed to clone Subversion history from %s (exit code %d%s)"
	gitSubversionCloneExecutionFailureTemplateConstant   = "Unable to clone Subversion history from %s: %s"
	gitForEachRefStartTemplateConstant                   = "Enumerating references matching %s in %s"
	gitForEachRefSuccessTemplateConstant                 = "Enumerated references matching %s in %s"
	gitForEachRefFailureTemplateConstant                 = "Failed to enumerate references matching %s in %s (exit code %d%s)"
	gitForEachRefExecutionFailureTemplateConstant        = "Unable to enumerate references matching %s in %s: %s"
	gitTagCreationStartTemplateConstant                  = "Creating tag %s from %s in %s"
	gitTagCreationSuccessTemplateConstant                = "Created tag %s from %s in %s"
	gitTagCreationFailureTemplateConstant                = "Failed to create tag %s from %s in %s (exit code %d%s)"
	gitTagCreationExecutionFailureTemplateConstant       = "Unable to create tag %s from %s in %s: %s"
	gitBranchCreationStartTemplateConstant               = "Creating branch %s from %s in %s"
	gitBranchCreationSuccessTemplateConstant             = "Created branch %s from %s in %s"
	gitBranchCreationFailureTemplateConstant             = "Failed to create branch %s from %s in %s (exit code %d%s)"
	gitBranchCreationExecutionFailureTemplateConstant    = "Unable to create branch %s from %s in %s: %s"
	gitReferenceDeletionStartTemplateConstant            = "Removing reference %s in %s"
	gitReferenceDeletionSuccessTemplateConstant          = "Removed reference %s in %s"
	gitReferenceDeletionFailureTemplateConstant          = "Failed to remove reference %s in %s (exit code %d%s)"
	gitReferenceDeletionExecutionFailureTemplateConstant = "Unable to remove reference %s in %s: %s"
	gitConfigStartTemplateConstant                       = "Setting configuration %s in %s"
	gitConfigSuccessTemplateConstant                     = "Set configuration %s in %s"
	gitConfigFailureTemplateConstant                     = "Failed to set configuration %s in %s (exit code %d%s)"
	gitConfigExecutionFailureTemplateConstant            = "Unable to set configuration %s in %s: %s"
	gitAddStartTemplateConstant                          = "Staging %s in %s"
	gitAddSuccessTemplateConstant                        = "Staged %s in %s"
	gitAddFailureTemplateConstant                        = "Failed to stage %s in %s (exit code %d%s)"
	gitAddExecutionFailureTemplateConstant               = "Unable to stage %s in %s: %s"
	gitCommitStartTemplateConstant                       = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant                     = "Created commit in %s with message %q"
	gitCommitFailureTemplateConstant                     = "Failed to create commit in %s with message %q (exit code %d%s)"
	gitCommitExecutionFailureTemplateConstant            = "Unable to create commit in %s with message %q: %s"
	gitRemoteAddStartTemplateConstant                    = "Registering remote %s pointing to %s in %s"
	gitRemoteAddSuccessTemplateConstant                  = "Registered remote %s pointing to %s in %s"
	gitRemoteAddFailureTemplateConstant                  = "Failed to register remote %s pointing to %s in %s (exit code %d%s)"
	gitRemoteAddExecutionFailureTemplateConstant         = "Unable to register remote %s pointing to %s in %s: %s"
	gitPushStartTemplateConstant                         = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant                       = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant                       = "Failed to push %s to %s from %s (exit code %d%s)"
	gitPushExecutionFailureTemplateConstant              = "Unable to push %s to %s from %s: %s"
	subversionLogStartTemplateConstant                   = "Reading Subversion log from %s"
	subversionLogSuccessTemplateConstant                 = "Read Subversion log from %s"
	subversionLogFailureTemplateConstant                 = "Failed to read Subversion log from %s (exit code %d%s)"
	subversionLogExecutionFailureTemplateConstant        = "Unable to read Subversion log from %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandGit:
		return formatter.describeGitMessage(command, result, failure, stage)
	case CommandSubversion:
		return formatter.describeSubversionMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitSubversionSubcommandNameConstant:
		return formatter.describeGitSubversionMessage(command, result, failure, stage)
	case gitForEachRefSubcommandNameConstant:
		return formatter.describeGitForEachRefMessage(command, result, failure, stage)
	case gitTagSubcommandNameConstant:
		return formatter.describeGitTagMessage(command, result, failure, stage)
	case gitBranchSubcommandNameConstant:
		return formatter.describeGitBranchMessage(command, result, failure, stage)
	case gitUpdateRefSubcommandNameConstant:
		return formatter.describeGitUpdateRefMessage(command, result, failure, stage)
	case gitConfigSubcommandNameConstant:
		return formatter.describeGitConfigMessage(command, result, failure, stage)
	case gitAddSubcommandNameConstant:
		return formatter.describeGitAddMessage(command, result, failure, stage)
	case gitCommitSubcommandNameConstant:
		return formatter.describeGitCommitMessage(command, result, failure, stage)
	case gitRemoteSubcommandNameConstant:
		return formatter.describeGitRemoteMessage(command, result, failure, stage)
	case gitPushSubcommandNameConstant:
		return formatter.describeGitPushMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitSubversionMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 2 || strings.TrimSpace(arguments[1]) != gitCloneSubcommandNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	sourceURL := formatter.ensureValue(formatter.extractCloneSourceURL(arguments[2:]))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitSubversionCloneStartTemplateConstant, sourceURL, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitSubversionCloneSuccessTemplateConstant, sourceURL, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitSubversionCloneFailureTemplateConstant, sourceURL, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitSubversionCloneExecutionFailureTemplateConstant, sourceURL, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitForEachRefMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	referencePattern := formatter.ensureValue(formatter.extractLastNonFlagArgument(command.Details.Arguments[1:]))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitForEachRefStartTemplateConstant, referencePattern, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitForEachRefSuccessTemplateConstant, referencePattern, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitForEachRefFailureTemplateConstant, referencePattern, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitForEachRefExecutionFailureTemplateConstant, referencePattern, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitTagMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	tagName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 1))
	targetReference := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitTagCreationStartTemplateConstant, tagName, targetReference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitTagCreationSuccessTemplateConstant, tagName, targetReference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitTagCreationFailureTemplateConstant, tagName, targetReference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitTagCreationExecutionFailureTemplateConstant, tagName, targetReference, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitBranchMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	branchName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 1))
	startPoint := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitBranchCreationStartTemplateConstant, branchName, startPoint, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitBranchCreationSuccessTemplateConstant, branchName, startPoint, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitBranchCreationFailureTemplateConstant, branchName, startPoint, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitBranchCreationExecutionFailureTemplateConstant, branchName, startPoint, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitUpdateRefMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	referenceName := formatter.ensureValue(findFlagValue(command.Details.Arguments, gitDeleteRefFlagConstant))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitReferenceDeletionStartTemplateConstant, referenceName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitReferenceDeletionSuccessTemplateConstant, referenceName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitReferenceDeletionFailureTemplateConstant, referenceName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitReferenceDeletionExecutionFailureTemplateConstant, referenceName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitConfigMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	configurationKey := formatter.ensureValue(formatter.extractFirstNonFlagArgument(command.Details.Arguments[1:]))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitConfigStartTemplateConstant, configurationKey, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitConfigSuccessTemplateConstant, configurationKey, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitConfigFailureTemplateConstant, configurationKey, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitConfigExecutionFailureTemplateConstant, configurationKey, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitAddMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	targetPath := formatter.ensureValue(formatter.extractFirstNonFlagArgument(command.Details.Arguments[1:]))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitAddStartTemplateConstant, targetPath, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitAddSuccessTemplateConstant, targetPath, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitAddFailureTemplateConstant, targetPath, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitAddExecutionFailureTemplateConstant, targetPath, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitCommitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	commitMessage := formatter.extractCommitMessage(command.Details.Arguments)

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, commitMessage)
	case messageStageSuccess:
		return fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectory, commitMessage)
	case messageStageFailure:
		return fmt.Sprintf(gitCommitFailureTemplateConstant, workingDirectory, commitMessage, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitCommitExecutionFailureTemplateConstant, workingDirectory, commitMessage, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitRemoteMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) < 2 || strings.TrimSpace(arguments[1]) != gitRemoteAddSubcommandNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))
	remoteURL := formatter.ensureValue(formatter.argumentAtIndex(arguments, 3))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRemoteAddStartTemplateConstant, remoteName, remoteURL, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitRemoteAddSuccessTemplateConstant, remoteName, remoteURL, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitRemoteAddFailureTemplateConstant, remoteName, remoteURL, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitRemoteAddExecutionFailureTemplateConstant, remoteName, remoteURL, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitPushMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.extractFirstNonFlagArgument(arguments[1:]))

	pushTarget := fallbackUnknownValueLabelConstant
	switch {
	case containsArgument(arguments, gitPushAllFlagConstant):
		pushTarget = pushAllBranchesLabelConstant
	case containsArgument(arguments, gitPushTagsFlagConstant):
		pushTarget = pushAllTagsLabelConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitPushStartTemplateConstant, pushTarget, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitPushSuccessTemplateConstant, pushTarget, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitPushFailureTemplateConstant, pushTarget, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(gitPushExecutionFailureTemplateConstant, pushTarget, remoteName, workingDirectory, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeSubversionMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	if len(arguments) == 0 || strings.TrimSpace(arguments[0]) != subversionLogSubcommandNameConstant {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	sourceURL := formatter.ensureValue(formatter.extractLastNonFlagArgument(arguments[1:]))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(subversionLogStartTemplateConstant, sourceURL)
	case messageStageSuccess:
		return fmt.Sprintf(subversionLogSuccessTemplateConstant, sourceURL)
	case messageStageFailure:
		return fmt.Sprintf(subversionLogFailureTemplateConstant, sourceURL, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(subversionLogExecutionFailureTemplateConstant, sourceURL, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return arguments[index]
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) extractFirstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractLastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index >= 0; index-- {
		trimmed := strings.TrimSpace(arguments[index])
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

// extractCloneSourceURL locates the repository URL among clone arguments. The
// URL precedes the trailing target directory when both are present.
func (formatter CommandMessageFormatter) extractCloneSourceURL(arguments []string) string {
	nonFlagArguments := []string{}
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		nonFlagArguments = append(nonFlagArguments, trimmed)
	}
	if len(nonFlagArguments) >= 2 {
		return nonFlagArguments[len(nonFlagArguments)-2]
	}
	if len(nonFlagArguments) == 1 {
		return nonFlagArguments[0]
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractCommitMessage(arguments []string) string {
	message := findFlagValue(arguments, gitMessageFlagConstant)
	if len(message) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return message
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}
