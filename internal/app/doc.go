// Package app contains the core application logic for the sweep tools. It
// defines the App struct, the per-command configurations, and the generate
// and run lifecycles, decoupled from any specific entrypoint like a CLI.
package app
