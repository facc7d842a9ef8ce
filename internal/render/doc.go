// Package render turns a canonical site.SiteConfig into the artifacts a
// renderer consumes: a JSON manifest and a Hugo configuration file.
package render
