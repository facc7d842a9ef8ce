// Package site turns authored documentation-site settings into a canonical,
// validated SiteConfig ready for a static-site renderer.
//
// The entry point is Build. It is a pure, single-pass validate-then-normalize
// transformation: it performs no I/O, keeps no state and can be called from
// any number of goroutines. A RawConfig either becomes a fully default-filled
// SiteConfig or Build returns a *ValidationError naming the offending field
// path (for example "nav[2].items[0]"). There is no partial success.
//
// Links come in two shapes. External links use a recognised absolute scheme
// (http, https, mailto, tel) and pass through untouched. Internal links are
// root-relative ("/QUICK_START") and are prefixed with the site base path
// exactly once by ResolveLink, which is idempotent so that rebuilding an
// already canonical config never double-prefixes.
package site
