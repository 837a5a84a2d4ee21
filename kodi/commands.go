package kodi

import (
	"context"
	"fmt"
	"strings"
)

type Command int

const (
	Unknown Command = iota
	Help
	Play
	Stop
	Pause
	Restart
	Mute
	Unmute
	Next
	Previous
)

var commandNames = map[string]Command{
	"help":     Help,
	"play":     Play,
	"stop":     Stop,
	"pause":    Pause,
	"restart":  Restart,
	"mute":     Mute,
	"unmute":   Unmute,
	"next":     Next,
	"previous": Previous,
}

func ParseCommand(word string) Command {
	return commandNames[strings.ToLower(word)]
}

// Controller runs spoken commands against one Kodi server.
type Controller struct {
	rpc     Caller
	keyword string
}

func NewController(rpc Caller, keyword string) *Controller {
	return &Controller{rpc: rpc, keyword: keyword}
}

// Run executes cmd with the words that followed it.
func (c *Controller) Run(ctx context.Context, cmd Command, words []string) Reply {
	var r Reply
	switch cmd {
	case Help:
		r.Response = c.help()
	case Play:
		c.play(ctx, &r, words)
	case Stop:
		c.stop(ctx, &r)
	case Pause:
		c.pauseRestart(ctx, &r, "paused", false)
	case Restart:
		c.pauseRestart(ctx, &r, "restarted", true)
	case Mute:
		c.setMute(ctx, &r, "mute", true)
	case Unmute:
		c.setMute(ctx, &r, "unmute", false)
	case Next:
		c.move(ctx, &r, "next", "down")
	case Previous:
		c.move(ctx, &r, "previous", "up")
	default:
		r.Response = fmt.Sprintf("Unknown command, try %s help", c.keyword)
	}
	return r
}

func (c *Controller) help() string {
	k := c.keyword
	return fmt.Sprintf("To play music say: %s play, followed by the album or song title. ", k) +
		fmt.Sprintf("To control playback use %s stop, %s pause or %s restart. ", k, k, k) +
		fmt.Sprintf("You can also use %s next or %s previous to change track when playing an album.", k, k)
}

// play stops whatever is running, unmutes, then opens the first album
// and failing that the first song whose label equals the search text.
func (c *Controller) play(ctx context.Context, r *Reply, words []string) {
	if len(words) < 1 {
		r.Response = "Specify something to play"
		return
	}
	search := strings.ToLower(strings.TrimSpace(strings.Join(words, " ")))
	c.stop(ctx, r)
	c.setMute(ctx, r, "unmute", false)

	for _, album := range c.albums(ctx, r) {
		if strings.ToLower(album.Label) == search {
			c.open(ctx, r, map[string]interface{}{"albumid": album.ID}, album.Label)
			return
		}
	}
	for _, song := range c.songs(ctx, r) {
		if strings.ToLower(song.Label) == search {
			c.open(ctx, r, map[string]interface{}{"songid": song.ID}, song.Label)
			return
		}
	}
	r.Response = fmt.Sprintf("Sorry, I can't find %s.", search)
}

func (c *Controller) open(ctx context.Context, r *Reply, item map[string]interface{}, label string) {
	if c.callOK(ctx, r, "Player.Open", map[string]interface{}{"item": item}) {
		r.Response = fmt.Sprintf("OK, I'm playing %s.", label)
	} else {
		r.fail(failure(fmt.Sprintf("Error trying to play, %s.", label)))
	}
}

// Players are handled one after another and each overwrites the reply,
// so with several active players the last one is what gets spoken.
func (c *Controller) stop(ctx context.Context, r *Reply) {
	active := c.activePlayers(ctx, r)
	if len(active) == 0 {
		r.Response = "Nothing playing"
		return
	}
	for _, player := range active {
		if c.callOK(ctx, r, "Player.Stop", map[string]interface{}{"playerid": player.ID}) {
			r.Response = "OK, stopping"
		} else {
			r.fail(failure("Error stopping play"))
		}
	}
}

func (c *Controller) move(ctx context.Context, r *Reply, name, direction string) {
	active := c.activePlayers(ctx, r)
	if len(active) == 0 {
		r.Response = "Nothing playing"
		return
	}
	for _, player := range active {
		params := map[string]interface{}{"playerid": player.ID, "direction": direction}
		if c.callOK(ctx, r, "Player.Move", params) {
			r.Response = fmt.Sprintf("OK, play %s", name)
		} else {
			r.fail(failure(fmt.Sprintf("Error, play %s", name)))
		}
	}
}

func (c *Controller) setMute(ctx context.Context, r *Reply, name string, mute bool) {
	if isNull(c.call(ctx, r, "Application.SetMute", map[string]interface{}{"mute": mute})) {
		r.fail(failure(fmt.Sprintf("Error, %s failed", name)))
	} else {
		r.Response = fmt.Sprintf("OK, %s", name)
	}
}

// pauseRestart toggles only players in the opposite state: pause needs a
// positive speed, restart needs speed 0.
func (c *Controller) pauseRestart(ctx context.Context, r *Reply, name string, restart bool) {
	active := c.activePlayers(ctx, r)
	if len(active) == 0 {
		r.Response = "Nothing playing"
		return
	}
	for _, player := range active {
		speed := c.speed(ctx, r, player.ID)
		if (!restart && speed > 0) || (restart && speed == 0) {
			if isNull(c.call(ctx, r, "Player.PlayPause", map[string]interface{}{"playerid": player.ID})) {
				r.fail(failure(fmt.Sprintf("Error %s failed", name)))
				continue
			}
			if restart {
				c.setMute(ctx, r, "unmute", false)
			}
			r.Response = fmt.Sprintf("OK %s", name)
		} else {
			r.Response = fmt.Sprintf("Play already %s", name)
		}
	}
}
