package kodi

import (
	"context"
	"encoding/json"
	"strings"
)

type Album struct {
	Label string `json:"label"`
	ID    int    `json:"albumid"`
}

type Song struct {
	Label string `json:"label"`
	ID    int    `json:"songid"`
}

type Player struct {
	Type string `json:"type"`
	ID   int    `json:"playerid"`
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// call records any failure on r and returns whatever result came back.
func (c *Controller) call(ctx context.Context, r *Reply, method string, params interface{}) json.RawMessage {
	result, err := c.rpc.Call(ctx, method, params)
	r.fail(err)
	return result
}

// callOK is true when the result is the string "OK" in any case.
func (c *Controller) callOK(ctx context.Context, r *Reply, method string, params interface{}) bool {
	var s string
	if err := json.Unmarshal(c.call(ctx, r, method, params), &s); err != nil {
		return false
	}
	return strings.ToLower(s) == "ok"
}

func (c *Controller) activePlayers(ctx context.Context, r *Reply) []Player {
	var players []Player
	if err := json.Unmarshal(c.call(ctx, r, "Player.GetActivePlayers", nil), &players); err != nil {
		return nil
	}
	return players
}

// speed is -1 when the player did not report one.
func (c *Controller) speed(ctx context.Context, r *Reply, playerID int) int {
	params := map[string]interface{}{"playerid": playerID, "properties": []string{"speed"}}
	var props struct {
		Speed *int `json:"speed"`
	}
	if err := json.Unmarshal(c.call(ctx, r, "Player.getProperties", params), &props); err != nil || props.Speed == nil {
		return -1
	}
	return *props.Speed
}

func (c *Controller) albums(ctx context.Context, r *Reply) []Album {
	var result struct {
		Albums []Album `json:"albums"`
	}
	if err := json.Unmarshal(c.call(ctx, r, "AudioLibrary.GetAlbums", nil), &result); err != nil {
		return nil
	}
	return result.Albums
}

func (c *Controller) songs(ctx context.Context, r *Reply) []Song {
	var result struct {
		Songs []Song `json:"songs"`
	}
	if err := json.Unmarshal(c.call(ctx, r, "AudioLibrary.GetSongs", nil), &result); err != nil {
		return nil
	}
	return result.Songs
}
