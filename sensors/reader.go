package sensors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/elijahnyp/voice_scripts/util"
	"github.com/go-resty/resty/v2"
)

const (
	msgMissingConfig = "Sorry, missing configuration"
	msgHelp          = "Specify room and the type of reading, e.g. sensors, what's the temperature in the study ?"
	msgUnknownRoom   = "Sorry I couldn't identify the room"
	msgUnknownSensor = "Sorry I couldn't identify the type of sensor."
	msgNoReading     = "Sorry, I couldn't get a reading for that sensor. %s"
	msgReading       = "The %s %s is %.1f %s"
)

// latestResponse is the body of GET {url}/{room}/{sensor}/latest. The
// newest reading comes first.
type latestResponse struct {
	Data []struct {
		Record struct {
			Record struct {
				Units string  `json:"units"`
				Value float64 `json:"value"`
			} `json:"record"`
		} `json:"record"`
	} `json:"data"`
}

type Reader struct {
	cfg     *Config
	rest    *resty.Client
	certErr error
}

// NewReader prepares a reader. A nil cfg gives a reader that only ever
// reports missing configuration. The certificate, when set, is resolved
// against baseDir and trusted as the root CA.
func NewReader(cfg *Config, baseDir string) *Reader {
	rd := &Reader{cfg: cfg, rest: util.NewRestClient()}
	if cfg == nil || cfg.CertFile == "" {
		return rd
	}
	certFile := cfg.CertFile
	if !filepath.IsAbs(certFile) {
		certFile = filepath.Join(baseDir, certFile)
	}
	if _, err := os.Stat(certFile); err != nil {
		rd.certErr = fmt.Errorf("certificate %s: %w", certFile, err)
		return rd
	}
	rd.rest.SetRootCertificate(certFile)
	return rd
}

// Run answers a request made of the words after the keyword.
func (rd *Reader) Run(ctx context.Context, words []string) string {
	if rd.cfg == nil {
		return msgMissingConfig
	}
	t := Resolve(rd.cfg, words)
	util.Logger.Debug().Msgf("resolved %v to room=%q sensor=%q", words, t.Room, t.Sensor)
	switch {
	case t.Room == HelpRoom:
		return msgHelp
	case !rd.cfg.HasRoom(t.Room):
		return msgUnknownRoom
	case !rd.cfg.HasSensor(t.Sensor):
		return msgUnknownSensor
	}
	return rd.Reading(ctx, t)
}

// Reading fetches the latest value for t and phrases it.
func (rd *Reader) Reading(ctx context.Context, t Target) string {
	url := fmt.Sprintf("%s/%s/%s/latest", rd.cfg.URL, t.Room, t.Sensor)
	latest, err := rd.fetch(ctx, url)
	if err != nil {
		util.Logger.Warn().Msgf("reading %s failed: %v", url, err)
	}
	if len(latest.Data) == 0 {
		return fmt.Sprintf(msgNoReading, describe(err))
	}
	record := latest.Data[0].Record.Record
	return fmt.Sprintf(msgReading, t.Room, t.Sensor, record.Value, record.Units)
}

func (rd *Reader) fetch(ctx context.Context, url string) (latestResponse, error) {
	var latest latestResponse
	if rd.certErr != nil {
		return latest, &util.TransportError{Kind: util.TransportUnknown, Err: rd.certErr}
	}
	resp, err := rd.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return latest, util.ClassifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusOK {
		return latest, util.NewStatusError(resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), &latest); err != nil {
		return latestResponse{}, &util.TransportError{Kind: util.TransportUnknown, Err: err}
	}
	return latest, nil
}

func describe(err error) string {
	if err == nil {
		return ""
	}
	var te *util.TransportError
	if !errors.As(err, &te) {
		return "Unknown error connecting to the server."
	}
	switch te.Kind {
	case util.TransportConnect:
		return "Failed to connect to the server."
	case util.TransportTimeout:
		return "Timed out connecting to the server."
	case util.TransportStatus:
		return fmt.Sprintf("Error code %d connecting to the server.", te.StatusCode)
	default:
		return "Unknown error connecting to the server."
	}
}
