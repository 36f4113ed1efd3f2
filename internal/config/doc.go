// Package config resolves runtime settings from flags, USERFORM_* environment
// variables and an optional config file through viper.
package config
