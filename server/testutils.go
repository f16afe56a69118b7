package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	utils "github.com/minaorangina/warlog/internal"

	"github.com/gorilla/websocket"
)

// incompleteTranscript is well formed line by line but never reaches a
// game-winner or draw line
const incompleteTranscript = "Round 1\n" +
	"Player 1:\n" +
	"- Ten of Clubs\n" +
	"Player 2:\n" +
	"- Nine of Clubs\n" +
	"Round winner: Player 1 (Ten of Clubs)"

type stubStore struct{}

func (s stubStore) FindVerdict(ID string) (VerdictRes, bool) {
	return VerdictRes{}, false
}

// fails
func (s stubStore) AddVerdict(verdict VerdictRes) error {
	return errors.New("that didn't work now did it")
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func mustParseVerdict(t *testing.T, body *bytes.Buffer) VerdictRes {
	t.Helper()

	var got VerdictRes
	if err := json.NewDecoder(body).Decode(&got); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	return got
}

func newValidateRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/validate", bytes.NewBuffer(data))
	return request
}

func newClassifyRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/classify", bytes.NewBuffer(data))
	return request
}

func newVerdictRequest(verdictID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/verdict/"+verdictID, nil)
	return request
}

// newTestServer starts and returns a new server.
// The caller must call close to shut it down.
func newTestServer(store VerdictStore) *httptest.Server {
	return httptest.NewServer(NewServer(store))
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s: %v", url, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
}
