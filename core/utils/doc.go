// Package utils provides loose value conversion helpers.
// Host data arrives as decoded JSON of uneven shape; these helpers turn it into
// the canonical values the rest of the application works with.
package utils
