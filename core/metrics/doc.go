// Package metrics exposes prometheus instruments for the sync pipeline.
package metrics
