// Package diagnostic collects structured findings about a mapping run: declaration errors with
// suggestions, members left out of the tree and convention writes suppressed by values that were
// already specified.
package diagnostic
