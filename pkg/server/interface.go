/*
Package server implements msgpack IPC for the word learning provider.

Clients send msgpack encoded requests on stdin and receive one msgpack
response per request on stdout. The stream is a plain sequence of
msgpack maps with no framing in between.

# IPC

Every request carries an id, an action and, for train and lookup, a
payload in "p":

	{"id": "req_001", "action": "train", "p": "Asymmetrik is the best"}
	{"id": "req_002", "action": "lookup", "p": "a", "l": 10}
	{"id": "req_003", "action": "stats"}

Lookups answer with the ranked candidates, highest confidence first:

	{"id": "req_002", "status": "ok", "s": [{"w": "asymmetrik", "c": 1}], "n": 1, "t": 12}

Failures keep the request id and carry a message and a code:

	{"id": "req_002", "status": "error", "e": "no suggestions found", "code": 404}

Codes: 400 for empty or single word input, 404 when no learned word has
the prefix, 409 when nothing was trained yet, 500 otherwise.
*/
package server

const (
	ActionTrain  = "train"
	ActionLookup = "lookup"
	ActionStats  = "stats"

	StatusOK    = "ok"
	StatusError = "error"
	StatusReady = "ready"
)

// Request is a single train, lookup or stats request
type Request struct {
	ID      string `msgpack:"id"`
	Action  string `msgpack:"action"`
	Payload string `msgpack:"p,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
}

// Suggestion is a minimal candidate in a lookup response
type Suggestion struct {
	Word       string `msgpack:"w"`
	Confidence int    `msgpack:"c"`
}

// Response answers one Request. TimeTaken is in microseconds.
type Response struct {
	ID          string         `msgpack:"id"`
	Status      string         `msgpack:"status"`
	Suggestions []Suggestion   `msgpack:"s,omitempty"`
	Count       int            `msgpack:"n,omitempty"`
	Stats       map[string]int `msgpack:"stats,omitempty"`
	TimeTaken   int64          `msgpack:"t,omitempty"`
	Error       string         `msgpack:"e,omitempty"`
	Code        int            `msgpack:"code,omitempty"`
}
