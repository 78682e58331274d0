// Package config defines the application configuration structure and
// loading. Values come from an optional config.yaml and from VOCAB_-prefixed
// environment variables, with the environment taking precedence.
package config
