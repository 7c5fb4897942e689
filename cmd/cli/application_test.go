package cli_test

import (
	"strings"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/migratekit/svn2git/cmd/cli"
)

const testConfigurationYAMLConstant = "common:\n" +
	"  log_level: debug\n" +
	"  log_format: console\n" +
	"tools:\n" +
	"  authors:\n" +
	"    username: operator\n" +
	"  migrate:\n" +
	"    directory: /tmp/converted\n" +
	"    user_name: Migration Operator\n" +
	"    user_email: operator@example.com\n" +
	"    authors_file: ~/authors.txt\n" +
	"    trunk: mainline\n" +
	"    ignore:\n" +
	"      - bin/\n" +
	"      - obj/\n" +
	"    remote: git@github.com:owner/project.git\n" +
	"    push: true\n"

func TestApplicationConfigurationDecodesFromViperSettings(testInstance *testing.T) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")
	require.NoError(testInstance, viperInstance.ReadConfig(strings.NewReader(testConfigurationYAMLConstant)))

	var configuration cli.ApplicationConfiguration
	require.NoError(testInstance, mapstructure.Decode(viperInstance.AllSettings(), &configuration))

	require.Equal(testInstance, "debug", configuration.Common.LogLevel)
	require.Equal(testInstance, "console", configuration.Common.LogFormat)
	require.Equal(testInstance, "operator", configuration.Tools.Authors.Username)
	require.Equal(testInstance, "/tmp/converted", configuration.Tools.Migrate.TargetDirectory)
	require.Equal(testInstance, "Migration Operator", configuration.Tools.Migrate.UserName)
	require.Equal(testInstance, "operator@example.com", configuration.Tools.Migrate.UserEmail)
	require.Equal(testInstance, "~/authors.txt", configuration.Tools.Migrate.AuthorsFilePath)
	require.Equal(testInstance, "mainline", configuration.Tools.Migrate.TrunkPath)
	require.Equal(testInstance, []string{"bin/", "obj/"}, configuration.Tools.Migrate.IgnorePatterns)
	require.Equal(testInstance, "git@github.com:owner/project.git", configuration.Tools.Migrate.RemoteURL)
	require.True(testInstance, configuration.Tools.Migrate.PushAfterMigration)
}
