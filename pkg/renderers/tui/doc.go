// Package tui drives the form through terminal prompts. The prompt driver is
// an interface so tests can script answers; the default driver uses survey.
package tui
