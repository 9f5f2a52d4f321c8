package server

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// Client talks to a Server over a request writer and a response reader,
// typically the stdin and stdout pipes of a spawned wordlearn process.
type Client struct {
	encoder *msgpack.Encoder
	decoder *msgpack.Decoder
	nextID  int
}

func NewClient(requests io.Writer, responses io.Reader) *Client {
	return &Client{
		encoder: msgpack.NewEncoder(requests),
		decoder: msgpack.NewDecoder(responses),
	}
}

// WaitReady consumes the readiness message a server sends on start
func (c *Client) WaitReady() error {
	var response Response
	if err := c.decoder.Decode(&response); err != nil {
		return fmt.Errorf("waiting for server: %w", err)
	}
	if response.Status != StatusReady {
		return fmt.Errorf("unexpected status %q before ready", response.Status)
	}
	return nil
}

// Do sends request, assigning an id when it has none, and reads its response
func (c *Client) Do(request Request) (*Response, error) {
	if request.ID == "" {
		c.nextID++
		request.ID = "req_" + strconv.Itoa(c.nextID)
	}
	if err := c.encoder.Encode(request); err != nil {
		return nil, fmt.Errorf("encoding request %s: %w", request.ID, err)
	}

	var response Response
	if err := c.decoder.Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding response %s: %w", request.ID, err)
	}
	return &response, nil
}

func (c *Client) Train(passage string) (*Response, error) {
	return c.Do(Request{Action: ActionTrain, Payload: passage})
}

func (c *Client) Lookup(fragment string, limit int) (*Response, error) {
	return c.Do(Request{Action: ActionLookup, Payload: fragment, Limit: limit})
}

func (c *Client) Stats() (*Response, error) {
	return c.Do(Request{Action: ActionStats})
}
