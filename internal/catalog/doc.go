// Package catalog loads the movie catalog: a UTF-8 text resource with one
// movie per line, fields separated by tabs.
//
// # Format
//
//	<title>\t<plot>
//
// Field 0 is the title. Every remaining field is joined back together with a
// tab to form the plot, so a plot that itself contains tabs is kept whole.
// There is no header row and no escaping; embedded newlines are unsupported.
//
// # Loading
//
// A Loader performs exactly one fetch through its Source (FileSource for local
// paths, HTTPSource for http/https URLs), then parses the body:
//
//   - Blank lines are dropped silently
//   - Lines with fewer than two fields, or an empty title, are logged as
//     warnings and dropped; parsing continues
//   - Records keep source order and are never mutated afterwards
//
// # Errors
//
// Fetch failures are returned as *LoadError:
//
//   - Unreachable: the file could not be read or the request could not complete
//   - BadStatus: the server answered outside 2xx (Code holds the status)
//
// A catalog that parses to zero records is not an error; callers render an
// empty-catalog placeholder instead.
package catalog
