// Package build provides the canonical build pipeline for site configuration.
// The CLI commands and the serve loop both route through Service so that
// every build is logged and measured the same way.
package build
