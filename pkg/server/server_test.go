package server

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bastiangx/wordlearn/pkg/config"
	"github.com/bastiangx/wordlearn/pkg/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// runRequests serves the encoded requests and returns every response after the ready message
func runRequests(t *testing.T, cfg *config.Config, requests ...Request) []Response {
	t.Helper()

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}

	var out bytes.Buffer
	srv := NewServer(suggest.NewProvider(), cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var responses []Response
	for {
		var r Response
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		responses = append(responses, r)
	}

	require.NotEmpty(t, responses)
	assert.Equal(t, StatusReady, responses[0].Status)
	return responses[1:]
}

func TestServerTrainAndLookup(t *testing.T) {
	responses := runRequests(t, nil,
		Request{ID: "1", Action: ActionLookup, Payload: "a"},
		Request{ID: "2", Action: ActionTrain, Payload: "Asymmetrik is the best"},
		Request{ID: "3", Action: ActionTrain, Payload: "PiZZa is also the Best"},
		Request{ID: "4", Action: ActionLookup, Payload: "I"},
		Request{ID: "5", Action: ActionLookup, Payload: "hoo"},
		Request{ID: "6", Action: ActionTrain, Payload: "the"},
		Request{ID: "7", Action: ActionStats},
	)
	require.Len(t, responses, 7)

	assert.Equal(t, "1", responses[0].ID)
	assert.Equal(t, StatusError, responses[0].Status)
	assert.Equal(t, 409, responses[0].Code)

	assert.Equal(t, StatusOK, responses[1].Status)
	assert.Equal(t, 4, responses[1].Count)

	assert.Equal(t, []Suggestion{{Word: "is", Confidence: 2}}, responses[3].Suggestions)
	assert.Equal(t, 1, responses[3].Count)

	assert.Equal(t, 404, responses[4].Code)
	assert.Equal(t, suggest.ErrNotFound.Error(), responses[4].Error)

	assert.Equal(t, 400, responses[5].Code)

	assert.Equal(t, 6, responses[6].Stats["distinctWords"])
	assert.Equal(t, 9, responses[6].Stats["totalWords"])
}

func TestServerLimitsAndValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 2
	cfg.Server.MaxFragment = 5

	responses := runRequests(t, cfg,
		Request{ID: "1", Action: ActionTrain, Payload: "tea tea team tease tent"},
		Request{ID: "2", Action: ActionLookup, Payload: "te"},
		Request{ID: "3", Action: ActionLookup, Payload: "te", Limit: 1},
		Request{ID: "4", Action: ActionLookup, Payload: "teaseful"},
		Request{ID: "5", Action: ActionLookup, Payload: " "},
		Request{ID: "6", Action: "fly"},
	)
	require.Len(t, responses, 6)

	assert.Equal(t, []Suggestion{
		{Word: "tea", Confidence: 2},
		{Word: "team", Confidence: 1},
	}, responses[1].Suggestions)
	assert.Equal(t, []Suggestion{{Word: "tea", Confidence: 2}}, responses[2].Suggestions)
	assert.Equal(t, 400, responses[3].Code)
	assert.Equal(t, 400, responses[4].Code)
	assert.Equal(t, 400, responses[5].Code)
	assert.Contains(t, responses[5].Error, "fly")
}

func TestServerRejectsUndecodableInput(t *testing.T) {
	in := bytes.NewReader([]byte{0xc1})
	var out bytes.Buffer
	srv := NewServer(suggest.NewProvider(), nil, in, &out)

	assert.Error(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready, failure Response
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&failure))
	assert.Equal(t, StatusError, failure.Status)
	assert.Equal(t, 400, failure.Code)
}

func TestClientOverPipes(t *testing.T) {
	reqReader, reqWriter := io.Pipe()
	respReader, respWriter := io.Pipe()

	srv := NewServer(suggest.NewProvider(), nil, reqReader, respWriter)
	done := make(chan error, 1)
	go func() {
		err := srv.Start()
		respWriter.Close()
		done <- err
	}()

	client := NewClient(reqWriter, respReader)
	require.NoError(t, client.WaitReady())

	resp, err := client.Train("Bobby is just the worst")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "req_1", resp.ID)

	resp, err = client.Lookup("w", 0)
	require.NoError(t, err)
	assert.Equal(t, "req_2", resp.ID)
	assert.Equal(t, []Suggestion{{Word: "worst", Confidence: 1}}, resp.Suggestions)

	resp, err = client.Stats()
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Stats["indexedWords"])

	require.NoError(t, reqWriter.Close())
	assert.NoError(t, <-done)
}
