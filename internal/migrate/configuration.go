package migrate

import "strings"

const (
	defaultIgnorePatternBinariesConstant  = "bin/"
	defaultIgnorePatternObjectsConstant   = "obj/"
	defaultIgnorePatternUserFilesConstant = "*.user"
	defaultIgnorePatternSolutionConstant  = "*.suo"
	ignoreConfigurationKeyConstant        = "ignore"
	pushConfigurationKeyConstant          = "push"
)

// CommandConfiguration captures persisted configuration for repository migration.
type CommandConfiguration struct {
	TargetDirectory    string   `mapstructure:"directory"`
	UserName           string   `mapstructure:"user_name"`
	UserEmail          string   `mapstructure:"user_email"`
	AuthorsFilePath    string   `mapstructure:"authors_file"`
	TrunkPath          string   `mapstructure:"trunk"`
	TagsPath           string   `mapstructure:"tags"`
	BranchesPath       string   `mapstructure:"branches"`
	IgnorePatterns     []string `mapstructure:"ignore"`
	RemoteURL          string   `mapstructure:"remote"`
	PushAfterMigration bool     `mapstructure:"push"`
	Username           string   `mapstructure:"username"`
}

// DefaultCommandConfiguration returns baseline configuration values for repository migration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		IgnorePatterns: []string{
			defaultIgnorePatternBinariesConstant,
			defaultIgnorePatternObjectsConstant,
			defaultIgnorePatternUserFilesConstant,
			defaultIgnorePatternSolutionConstant,
		},
	}
}

// DefaultConfigurationValues exposes migration defaults keyed for the configuration loader.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + ignoreConfigurationKeyConstant: defaults.IgnorePatterns,
		rootKey + "." + pushConfigurationKeyConstant:   defaults.PushAfterMigration,
	}
}

// Sanitize trims configured values and removes empty ignore entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.TargetDirectory = strings.TrimSpace(configuration.TargetDirectory)
	sanitized.UserName = strings.TrimSpace(configuration.UserName)
	sanitized.UserEmail = strings.TrimSpace(configuration.UserEmail)
	sanitized.AuthorsFilePath = strings.TrimSpace(configuration.AuthorsFilePath)
	sanitized.TrunkPath = strings.TrimSpace(configuration.TrunkPath)
	sanitized.TagsPath = strings.TrimSpace(configuration.TagsPath)
	sanitized.BranchesPath = strings.TrimSpace(configuration.BranchesPath)
	sanitized.RemoteURL = strings.TrimSpace(configuration.RemoteURL)
	sanitized.Username = strings.TrimSpace(configuration.Username)

	sanitizedIgnorePatterns := make([]string, 0, len(configuration.IgnorePatterns))
	for _, ignorePattern := range configuration.IgnorePatterns {
		trimmedIgnorePattern := strings.TrimSpace(ignorePattern)
		if len(trimmedIgnorePattern) == 0 {
			continue
		}
		sanitizedIgnorePatterns = append(sanitizedIgnorePatterns, trimmedIgnorePattern)
	}
	sanitized.IgnorePatterns = sanitizedIgnorePatterns

	return sanitized
}
