// Package rpc reaches the plugin backend.
//
// Every backend operation is a named command with JSON arguments and a JSON result.
// Caller is the transport primitive; HTTPCaller implements it over HTTP and Backend
// layers typed methods on top of any Caller.
package rpc
