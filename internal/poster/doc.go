// Package poster derives poster asset paths from movie titles and models the
// fallback behaviour used when a derived asset cannot be loaded.
//
// # Naming Policy
//
// Asset names must match an existing directory of images, so there is exactly
// one policy:
//
//  1. Remove ' " : ! ? entirely (no separator is inserted)
//  2. Collapse every run of whitespace and/or hyphens into a single "_"
//  3. Trim leading and trailing "_"
//  4. Keep the original letter case
//  5. Compose <root>/<stem>.<ext>
//
// With the defaults, "Star Wars: Episode IV" becomes
// "movie_posters/Star_Wars_Episode_IV.jpg" and "Spider-Man" becomes
// "movie_posters/Spider_Man.jpg".
//
// # Fallback
//
// Image holds a poster slot. Its first Fail swaps in the fallback asset and
// disarms the handler; further failures are ignored so a missing fallback
// cannot loop. Probers (FileProber, HTTPProber) answer whether an asset loads.
package poster
