package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

type readmeApplicationConfiguration struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"common"`
	Tools struct {
		Authors struct {
			Username string `yaml:"username"`
		} `yaml:"authors"`
		Migrate struct {
			Directory      string   `yaml:"directory"`
			UserName       string   `yaml:"user_name"`
			UserEmail      string   `yaml:"user_email"`
			AuthorsFile    string   `yaml:"authors_file"`
			Trunk          string   `yaml:"trunk"`
			Tags           string   `yaml:"tags"`
			Branches       string   `yaml:"branches"`
			IgnorePatterns []string `yaml:"ignore"`
			Remote         string   `yaml:"remote"`
			Push           bool     `yaml:"push"`
		} `yaml:"migrate"`
	} `yaml:"tools"`
}

func TestReadmeConfigurationExampleParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	var configuration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(snippetContent), &configuration))

	require.NotEmpty(testInstance, configuration.Common.LogLevel)
	require.NotEmpty(testInstance, configuration.Common.LogFormat)
	require.NotEmpty(testInstance, configuration.Tools.Migrate.Directory)
	require.NotEmpty(testInstance, configuration.Tools.Migrate.UserName)
	require.NotEmpty(testInstance, configuration.Tools.Migrate.UserEmail)
	require.NotEmpty(testInstance, configuration.Tools.Migrate.AuthorsFile)
	require.Equal(testInstance, []string{"bin/", "obj/", "*.user", "*.suo"}, configuration.Tools.Migrate.IgnorePatterns)
	require.False(testInstance, configuration.Tools.Migrate.Push)
}
