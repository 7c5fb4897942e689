package migrate

import (
	"fmt"
	"strings"
)

const (
	standardLayoutFlagConstant   = "--stdlayout"
	trunkFlagTemplateConstant    = "--trunk=%s"
	tagsFlagTemplateConstant     = "--tags=%s"
	branchesFlagTemplateConstant = "--branches=%s"
)

// LayoutOverrides holds optional repository structure paths for git-svn.
type LayoutOverrides struct {
	Trunk    string
	Tags     string
	Branches string
}

// BuildCloneLayoutArguments translates layout overrides into git-svn clone
// flags. Every non-blank override contributes its own flag; when all three
// are blank the standard trunk/branches/tags layout is assumed.
func BuildCloneLayoutArguments(overrides LayoutOverrides) []string {
	layoutArguments := []string{}
	if trimmedTrunk := strings.TrimSpace(overrides.Trunk); len(trimmedTrunk) > 0 {
		layoutArguments = append(layoutArguments, fmt.Sprintf(trunkFlagTemplateConstant, trimmedTrunk))
	}
	if trimmedTags := strings.TrimSpace(overrides.Tags); len(trimmedTags) > 0 {
		layoutArguments = append(layoutArguments, fmt.Sprintf(tagsFlagTemplateConstant, trimmedTags))
	}
	if trimmedBranches := strings.TrimSpace(overrides.Branches); len(trimmedBranches) > 0 {
		layoutArguments = append(layoutArguments, fmt.Sprintf(branchesFlagTemplateConstant, trimmedBranches))
	}
	if len(layoutArguments) == 0 {
		return []string{standardLayoutFlagConstant}
	}
	return layoutArguments
}
