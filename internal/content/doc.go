// Package content is the page source for a documentation site. It discovers
// markdown pages under a docs directory, assigns each the route a renderer
// would serve it under, and reports canonical site links that point at no
// known page.
package content
