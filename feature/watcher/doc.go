// Package watcher syncs a game when the user opens its achievements page.
//
// The host reports route changes. When the route is a game's "Your Stuff" tab
// the watcher waits for the host to load that game's achievement progress and
// then syncs the game. A newer page view cancels the pending one.
package watcher
