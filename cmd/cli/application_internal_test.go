package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewApplicationRegistersSubcommands(testInstance *testing.T) {
	application := NewApplication()
	require.NotNil(testInstance, application.rootCommand)

	registeredCommandNames := map[string]struct{}{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredCommandNames[registeredCommand.Name()] = struct{}{}
	}

	require.Contains(testInstance, registeredCommandNames, "authors")
	require.Contains(testInstance, registeredCommandNames, "migrate")
}

func TestNewApplicationDeclaresPersistentFlags(testInstance *testing.T) {
	application := NewApplication()

	persistentFlags := application.rootCommand.PersistentFlags()
	require.NotNil(testInstance, persistentFlags.Lookup(configFileFlagNameConstant))
	require.NotNil(testInstance, persistentFlags.Lookup(logLevelFlagNameConstant))
	require.NotNil(testInstance, persistentFlags.Lookup(logFormatFlagNameConstant))
}
