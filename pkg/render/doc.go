// Package render defines the renderer contract shared by the HTML and
// terminal front ends, plus helpers that resolve go-theme selections into
// renderer configuration.
package render
