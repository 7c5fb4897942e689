package gitrepo

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	schemeSeparatorConstant                  = "://"
	remoteURLValidationErrorTemplateConstant = "%s: %s"
	requiredValueMessageConstant             = "value required"
	whitespaceInRemoteURLMessageConstant     = "remote url must not contain whitespace"
	emptySchemeMessageConstant               = "remote url scheme is empty"
	emptySchemeRemainderMessageConstant      = "remote url has no location after the scheme"
)

// RemoteURLValidationError indicates a remote location git could never accept.
type RemoteURLValidationError struct {
	Input   string
	Message string
}

// Error describes the validation failure.
func (validationError RemoteURLValidationError) Error() string {
	return fmt.Sprintf(remoteURLValidationErrorTemplateConstant, validationError.Input, validationError.Message)
}

// ValidateRemoteURL applies a light syntactic check to a remote location
// before it is handed to git. git accepts many transports, including scheme
// URLs, scp-style addresses, and plain filesystem paths, so only values no
// transport could take are rejected. git remote add remains the authority on
// whether the remote is reachable.
func ValidateRemoteURL(remote string) error {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteURLValidationError{Input: remote, Message: requiredValueMessageConstant}
	}

	for _, remoteRune := range trimmedRemote {
		if unicode.IsSpace(remoteRune) || unicode.IsControl(remoteRune) {
			return RemoteURLValidationError{Input: remote, Message: whitespaceInRemoteURLMessageConstant}
		}
	}

	if schemeSplitIndex := strings.Index(trimmedRemote, schemeSeparatorConstant); schemeSplitIndex >= 0 {
		if schemeSplitIndex == 0 {
			return RemoteURLValidationError{Input: remote, Message: emptySchemeMessageConstant}
		}
		if len(trimmedRemote[schemeSplitIndex+len(schemeSeparatorConstant):]) == 0 {
			return RemoteURLValidationError{Input: remote, Message: emptySchemeRemainderMessageConstant}
		}
	}

	return nil
}
