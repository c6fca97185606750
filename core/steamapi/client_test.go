package steamapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIEndpoint: srv.URL, APIKey: "key", SteamID: "7656", TimeoutSeconds: 5})
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{APIEndpoint: "http://127.0.0.1:1"})
	assert.False(t, c.Configured())

	_, err := c.GetOwnedGames(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.GetPlayerAchievements(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_GetOwnedGames(t *testing.T) {
	var query string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/IPlayerService/GetOwnedGames/v1/", r.URL.Path)
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"response":{"game_count":2,"games":[
			{"appid":10,"name":"Counter-Strike","playtime_forever":120,"rtime_last_played":1700000000},
			{"appid":20,"name":"Team Fortress Classic","playtime_forever":0,"rtime_last_played":0}
		]}}`))
	})

	games, err := c.GetOwnedGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Contains(t, query, "steamid=7656")
	assert.Contains(t, query, "include_appinfo=1")

	rec := games[0].Playtime()
	assert.Equal(t, 120, rec.MinutesPlayed)
	require.NotNil(t, rec.LastPlayed)
	assert.Equal(t, int64(1700000000), *rec.LastPlayed)
	assert.Nil(t, games[1].Playtime().LastPlayed)
}

func TestClient_GetOwnedGame(t *testing.T) {
	var filters []string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		filters = append(filters, r.URL.Query().Get("appids_filter[0]"))
		_, _ = w.Write([]byte(`{"response":{"games":[{"appid":20,"name":"TFC"}]}}`))
	})

	g, err := c.GetOwnedGame(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "TFC", g.Name)

	_, err = c.GetOwnedGame(context.Background(), 30)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"20", "30"}, filters)
}

func TestClient_GetPlayerAchievements(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "99" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"playerstats":{"error":"Requested app has no stats","success":false}}`))
			return
		}
		_, _ = w.Write([]byte(`{"playerstats":{"steamID":"7656","gameName":"CS","achievements":[
			{"apiname":"A","achieved":1,"unlocktime":1},
			{"apiname":"B","achieved":0,"unlocktime":0}
		],"success":true}}`))
	})

	stats, err := c.GetPlayerAchievements(context.Background(), 10)
	require.NoError(t, err)
	rec, ok := stats.Payload().Record()
	require.True(t, ok)
	assert.Equal(t, 2, rec.Total)
	assert.Equal(t, 1, rec.Unlocked)
	assert.InDelta(t, 50.0, rec.Percentage, 0.001)

	stats, err = c.GetPlayerAchievements(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, stats.Success)
	_, ok = stats.Payload().Record()
	assert.False(t, ok)
}

func TestClient_ServerError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	_, err := c.GetOwnedGames(context.Background())
	assert.ErrorContains(t, err, "unexpected status 403")
}
