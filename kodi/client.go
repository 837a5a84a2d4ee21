package kodi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elijahnyp/voice_scripts/util"
	"github.com/go-resty/resty/v2"
)

// Caller issues one JSON-RPC method call and returns its raw result.
type Caller interface {
	Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error)
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
}

// Client talks to Kodi's JSON-RPC endpoint with the request encoded in
// the query string of a GET.
type Client struct {
	rest     *resty.Client
	endpoint string
	debug    bool
}

func NewClient(cfg Config) *Client {
	return &Client{
		rest:     util.NewRestClient(),
		endpoint: fmt.Sprintf("http://%s:%d/jsonrpc", strings.ToLower(cfg.Host), cfg.Port),
		debug:    cfg.Debug,
	}
}

// Call returns a nil result with a *util.TransportError whenever the
// exchange fails.
func (c *Client) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return nil, &util.TransportError{Kind: util.TransportUnknown, Err: err}
	}
	if c.debug {
		util.Logger.Debug().Msgf("Request [%s?request=%s]", c.endpoint, payload)
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("request", string(payload)).
		Get(c.endpoint)
	if err != nil {
		return nil, util.ClassifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, util.NewStatusError(resp.StatusCode())
	}

	var out rpcResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &util.TransportError{Kind: util.TransportUnknown, Err: fmt.Errorf("decoding %s response: %w", method, err)}
	}
	if c.debug {
		var pretty bytes.Buffer
		if json.Indent(&pretty, resp.Body(), "", "    ") == nil {
			util.Logger.Debug().Msgf("Received:\n%s", pretty.String())
		}
	}
	return out.Result, nil
}
