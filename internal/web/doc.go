// Package web renders the catalog as a single static HTML page. Cards carry
// their title, plot and poster as data attributes and share one hidden
// detail modal, so the exported page behaves like the terminal grid.
package web
