// Package steamapi is a small Steam Web API client used as the slow remote tier
// for owned-game listing, playtime, names and achievements.
package steamapi
