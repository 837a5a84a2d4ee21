package kodi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
)

type rpcCall struct {
	Params    map[string]interface{}
	Method    string
	JSONRPC   string
	ID        int
	HasParams bool
}

// fakeKodi answers the JSON-RPC methods the controller uses from canned
// library and player state.
type fakeKodi struct {
	speeds  map[int]int
	results map[string]interface{}
	albums  []Album
	songs   []Song
	players []Player
	calls   []rpcCall
	status  int
	mu      sync.Mutex
}

func (f *fakeKodi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/jsonrpc" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw := r.URL.Query().Get("request")
	var req struct {
		Params  map[string]interface{} `json:"params"`
		JSONRPC string                 `json:"jsonrpc"`
		Method  string                 `json:"method"`
		ID      int                    `json:"id"`
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.Unmarshal([]byte(raw), &keys) //nolint:errcheck // already validated above
	_, hasParams := keys["params"]

	f.mu.Lock()
	f.calls = append(f.calls, rpcCall{Method: req.Method, Params: req.Params, JSONRPC: req.JSONRPC, ID: req.ID, HasParams: hasParams})
	status := f.status
	result := f.result(req.Method, req.Params)
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck // test helper
		"id":      1,
		"jsonrpc": "2.0",
		"result":  result,
	})
}

func (f *fakeKodi) result(method string, params map[string]interface{}) interface{} {
	if r, ok := f.results[method]; ok {
		return r
	}
	switch method {
	case "Player.GetActivePlayers":
		if f.players == nil {
			return []Player{}
		}
		return f.players
	case "Player.getProperties":
		id := int(params["playerid"].(float64))
		return map[string]int{"speed": f.speeds[id]}
	case "AudioLibrary.GetAlbums":
		return map[string]interface{}{"albums": f.albums}
	case "AudioLibrary.GetSongs":
		return map[string]interface{}{"songs": f.songs}
	case "Player.Open", "Player.Stop", "Player.Move":
		return "OK"
	case "Application.SetMute":
		return params["mute"]
	case "Player.PlayPause":
		return map[string]int{"speed": 1}
	}
	return nil
}

func (f *fakeKodi) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		out = append(out, c.Method)
	}
	return out
}

func (f *fakeKodi) callsTo(method string) []rpcCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []rpcCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// serverConfig points a Config at srv.
func serverConfig(t *testing.T, srv *httptest.Server) Config {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("bad server url: %v", err)
	}
	host, portText, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("bad server host: %v", err)
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		t.Fatalf("bad server port: %v", err)
	}
	return Config{Host: host, Port: port}
}

func newTestController(t *testing.T, f *fakeKodi) *Controller {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewController(NewClient(serverConfig(t, srv)), "kodi")
}

// recordingCaller answers from a fakeKodi without going over HTTP.
type recordingCaller struct {
	fake *fakeKodi
}

func (rc *recordingCaller) Call(_ context.Context, method string, params interface{}) (json.RawMessage, error) {
	var p map[string]interface{}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
	}
	rc.fake.mu.Lock()
	rc.fake.calls = append(rc.fake.calls, rpcCall{Method: method, Params: p, JSONRPC: "2.0", ID: 1, HasParams: params != nil})
	result := rc.fake.result(method, p)
	rc.fake.mu.Unlock()
	return json.Marshal(result)
}
