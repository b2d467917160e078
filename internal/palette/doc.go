// Package palette holds the wizard's data model: the form a user fills in,
// the palette returned by the generation service, and the ordered swatch
// view every renderer consumes.
package palette
