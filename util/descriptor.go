package util

import (
	"encoding/json"
	"fmt"
	"io"
)

// Descriptor is the registration blob printed when a script runs
// without arguments.
type Descriptor struct {
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	BeforeListen string   `json:"before-listen,omitempty"`
	AfterListen  string   `json:"after-listen,omitempty"`
}

// Print writes the descriptor as compact JSON on one line.
func (d Descriptor) Print(w io.Writer) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
