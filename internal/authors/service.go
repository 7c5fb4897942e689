package authors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/migratekit/svn2git/internal/execshell"
)

const (
	subversionExecutorMissingMessageConstant = "subversion executor not configured"
	repositoryURLRequiredMessageConstant     = "subversion repository URL required"
	logSubcommandConstant                    = "log"
	logQuietFlagConstant                     = "--quiet"
	usernameFlagTemplateConstant             = "--username=%s"
)

var (
	errSubversionExecutorMissing = errors.New(subversionExecutorMissingMessageConstant)
	errRepositoryURLRequired     = errors.New(repositoryURLRequiredMessageConstant)
)

// SubversionExecutor is the minimal command execution interface required from execshell.ShellExecutor.
type SubversionExecutor interface {
	ExecuteSubversion(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ListOptions configures a single author listing run.
type ListOptions struct {
	RepositoryURL string
	Username      string
}

// Service lists the unique authors of a Subversion repository.
type Service struct {
	executor SubversionExecutor
}

// NewService validates dependencies and constructs a Service.
func NewService(executor SubversionExecutor) (*Service, error) {
	if executor == nil {
		return nil, errSubversionExecutorMissing
	}
	return &Service{executor: executor}, nil
}

// ListAuthors runs `svn log --quiet` against the repository URL and extracts
// the sorted unique author names from its output.
func (service *Service) ListAuthors(executionContext context.Context, options ListOptions) ([]string, error) {
	trimmedRepositoryURL := strings.TrimSpace(options.RepositoryURL)
	if len(trimmedRepositoryURL) == 0 {
		return nil, errRepositoryURLRequired
	}

	logArguments := []string{logSubcommandConstant, logQuietFlagConstant}
	if trimmedUsername := strings.TrimSpace(options.Username); len(trimmedUsername) > 0 {
		logArguments = append(logArguments, fmt.Sprintf(usernameFlagTemplateConstant, trimmedUsername))
	}
	logArguments = append(logArguments, trimmedRepositoryURL)

	executionResult, executionError := service.executor.ExecuteSubversion(executionContext, execshell.CommandDetails{Arguments: logArguments})
	if executionError != nil {
		return nil, executionError
	}

	return ExtractAuthors(strings.NewReader(executionResult.StandardOutput))
}
