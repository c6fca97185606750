// Package tags exposes the backend's progress tags over HTTP.
package tags
