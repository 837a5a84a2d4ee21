package kodi

import (
	"errors"
	"fmt"

	"github.com/elijahnyp/voice_scripts/util"
)

const nothingToSay = "Umm, nothing to say"

// failure is an error whose text is spoken as-is.
type failure string

func (f failure) Error() string { return string(f) }

// Reply is the outcome of one command. Err wins over Response.
type Reply struct {
	Err      error
	Response string
}

func (r *Reply) fail(err error) {
	if err != nil {
		r.Err = err
	}
}

// Text is the single line handed back to the voice assistant.
func (r Reply) Text() string {
	if r.Err != nil {
		return describe(r.Err)
	}
	if r.Response != "" {
		return r.Response
	}
	return nothingToSay
}

func describe(err error) string {
	var te *util.TransportError
	if !errors.As(err, &te) {
		return err.Error()
	}
	switch te.Kind {
	case util.TransportConnect:
		return "Request failed to connect"
	case util.TransportTimeout:
		return "Request timed out"
	case util.TransportStatus:
		return fmt.Sprintf("Request error code %d", te.StatusCode)
	default:
		return fmt.Sprintf("Unknown request failed: %v", te.Err)
	}
}
