package flags_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/migratekit/svn2git/internal/utils/flags"
)

const (
	toggleFlagNameConstant  = "push"
	toggleFlagUsageConstant = "Push converted history to the configured remote"
)

func TestAddToggleFlagParsesLiteralValues(testInstance *testing.T) {
	testCases := []struct {
		name          string
		arguments     []string
		defaultValue  bool
		expectedValue bool
		expectError   bool
	}{
		{
			name:          "yes_enables_toggle",
			arguments:     []string{"--push=yes"},
			expectedValue: true,
		},
		{
			name:          "no_disables_toggle",
			arguments:     []string{"--push=no"},
			defaultValue:  true,
			expectedValue: false,
		},
		{
			name:          "on_enables_toggle",
			arguments:     []string{"--push=on"},
			expectedValue: true,
		},
		{
			name:          "off_disables_toggle",
			arguments:     []string{"--push=off"},
			defaultValue:  true,
			expectedValue: false,
		},
		{
			name:          "one_enables_toggle",
			arguments:     []string{"--push=1"},
			expectedValue: true,
		},
		{
			name:          "zero_disables_toggle",
			arguments:     []string{"--push=0"},
			defaultValue:  true,
			expectedValue: false,
		},
		{
			name:          "uppercase_true_enables_toggle",
			arguments:     []string{"--push=TRUE"},
			expectedValue: true,
		},
		{
			name:          "bare_flag_enables_toggle",
			arguments:     []string{"--push"},
			expectedValue: true,
		},
		{
			name:          "absent_flag_keeps_default",
			arguments:     []string{},
			defaultValue:  true,
			expectedValue: true,
		},
		{
			name:        "unsupported_literal_reports_error",
			arguments:   []string{"--push=maybe"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
			var toggleTarget bool
			flags.AddToggleFlag(flagSet, &toggleTarget, toggleFlagNameConstant, "", testCase.defaultValue, toggleFlagUsageConstant)

			parseError := flagSet.Parse(testCase.arguments)
			if testCase.expectError {
				require.Error(subTest, parseError)
				return
			}

			require.NoError(subTest, parseError)
			require.Equal(subTest, testCase.expectedValue, toggleTarget)
		})
	}
}

func TestAddToggleFlagConfiguresFlagMetadata(testInstance *testing.T) {
	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	var toggleTarget bool
	flags.AddToggleFlag(flagSet, &toggleTarget, toggleFlagNameConstant, "p", false, toggleFlagUsageConstant)

	registeredFlag := flagSet.Lookup(toggleFlagNameConstant)
	require.NotNil(testInstance, registeredFlag)
	require.Equal(testInstance, "true", registeredFlag.NoOptDefVal)
	require.Equal(testInstance, "bool", registeredFlag.Value.Type())
	require.Equal(testInstance, "false", registeredFlag.Value.String())
	require.Contains(testInstance, registeredFlag.Usage, "<yes|NO>")
	require.Contains(testInstance, registeredFlag.Usage, toggleFlagUsageConstant)
}

func TestAddToggleFlagDefaultPlaceholderReflectsDefault(testInstance *testing.T) {
	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	var toggleTarget bool
	flags.AddToggleFlag(flagSet, &toggleTarget, toggleFlagNameConstant, "", true, toggleFlagUsageConstant)

	registeredFlag := flagSet.Lookup(toggleFlagNameConstant)
	require.NotNil(testInstance, registeredFlag)
	require.True(testInstance, toggleTarget)
	require.Contains(testInstance, registeredFlag.Usage, "<YES|no>")
}

func TestAddToggleFlagIgnoresInvalidRegistrations(testInstance *testing.T) {
	var toggleTarget bool
	require.NotPanics(testInstance, func() {
		flags.AddToggleFlag(nil, &toggleTarget, toggleFlagNameConstant, "", false, toggleFlagUsageConstant)
	})

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	require.NotPanics(testInstance, func() {
		flags.AddToggleFlag(flagSet, &toggleTarget, "", "", false, toggleFlagUsageConstant)
	})
	require.Nil(testInstance, flagSet.Lookup(""))
}
