// Package pathutils normalizes filesystem path inputs supplied through flags
// and configuration, expanding user home shortcuts consistently across
// commands.
package pathutils
