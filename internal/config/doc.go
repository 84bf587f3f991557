// Package config handles configuration for the Bloodstream client, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config
