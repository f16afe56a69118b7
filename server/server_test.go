package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/websocket"
	utils "github.com/minaorangina/warlog/internal"
	"github.com/stretchr/testify/assert"
)

func TestHandleValidate(t *testing.T) {
	t.Run("returns a stored verdict for a well-formed transcript", func(t *testing.T) {
		store := NewInMemoryVerdictStore()
		server := NewServer(store)

		data := mustMakeJson(t, ValidateReq{Transcript: incompleteTranscript})
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newValidateRequest(data))

		assertStatus(t, response.Code, http.StatusCreated)

		got := mustParseVerdict(t, response.Body)
		utils.AssertNotEmptyString(t, got.ID)
		assert.False(t, got.Valid)
		assert.Contains(t, got.Error, "game did not end")
		utils.AssertEqual(t, got.LineNumber, 7)
		utils.AssertEqual(t, len(got.Lines), 6)

		stored, ok := store.FindVerdict(got.ID)
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, stored.ID, got.ID)
	})

	t.Run("rejects anything but POST", func(t *testing.T) {
		server := NewServer(NewInMemoryVerdictStore())

		request, _ := http.NewRequest(http.MethodGet, "/validate", nil)
		response := httptest.NewRecorder()
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})

	t.Run("rejects a missing body", func(t *testing.T) {
		server := NewServer(NewInMemoryVerdictStore())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newValidateRequest(nil))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("surfaces a failing store", func(t *testing.T) {
		server := NewServer(stubStore{})

		data := mustMakeJson(t, ValidateReq{Transcript: incompleteTranscript})
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newValidateRequest(data))

		assertStatus(t, response.Code, http.StatusInternalServerError)
	})
}

func TestHandleVerdict(t *testing.T) {
	t.Run("finds a stored verdict", func(t *testing.T) {
		store := NewInMemoryVerdictStore()
		verdict := VerdictRes{ID: NewID(), Valid: false, State: "Round"}
		utils.AssertNoError(t, store.AddVerdict(verdict))

		server := NewServer(store)
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newVerdictRequest(verdict.ID))

		assertStatus(t, response.Code, http.StatusOK)

		got := mustParseVerdict(t, response.Body)
		utils.AssertEqual(t, got.ID, verdict.ID)
		utils.AssertEqual(t, got.State, "Round")
	})

	t.Run("404s on an unknown ID", func(t *testing.T) {
		server := NewServer(NewInMemoryVerdictStore())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newVerdictRequest("nonsense-id"))

		assertStatus(t, response.Code, http.StatusNotFound)
		assert.Contains(t, response.Body.String(), "unknown verdict ID 'nonsense-id'")
	})

	t.Run("400s on a missing ID", func(t *testing.T) {
		server := NewServer(NewInMemoryVerdictStore())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newVerdictRequest(""))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})
}

func TestHandleClassify(t *testing.T) {
	t.Run("annotates each line independently", func(t *testing.T) {
		server := NewServer(NewInMemoryVerdictStore())

		transcript := "Round 1\n\ncomplete garbage\n- Ace of Spades"
		data := mustMakeJson(t, ValidateReq{Transcript: transcript})
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newClassifyRequest(data))

		assertStatus(t, response.Code, http.StatusOK)

		var got ClassifyRes
		utils.AssertNoError(t, json.NewDecoder(response.Body).Decode(&got))

		utils.AssertEqual(t, len(got.Lines), 4)
		utils.AssertEqual(t, got.Lines[0].Status, StatusCorrect)
		utils.AssertEqual(t, got.Lines[0].Kind, "Round")
		utils.AssertEqual(t, got.Lines[1].Status, StatusIgnore)
		utils.AssertEqual(t, got.Lines[2].Status, StatusWrong)
		utils.AssertEqual(t, got.Lines[3].Kind, "FaceUpCard")

		utils.AssertDeepEqual(t, got.Erroneous, []int{3})
	})

	t.Run("reports no erroneous lines for a clean transcript", func(t *testing.T) {
		server := NewServer(NewInMemoryVerdictStore())

		data := mustMakeJson(t, ValidateReq{Transcript: incompleteTranscript})
		response := httptest.NewRecorder()
		server.ServeHTTP(response, newClassifyRequest(data))

		var got ClassifyRes
		utils.AssertNoError(t, json.NewDecoder(response.Body).Decode(&got))
		utils.AssertDeepEqual(t, got.Erroneous, []int{})
	})
}

func TestHandleWS(t *testing.T) {
	store := NewInMemoryVerdictStore()
	testServer := newTestServer(store)
	defer testServer.Close()

	ws := mustDialWS(t, makeWSUrl(testServer.URL))
	defer ws.Close()

	utils.AssertNoError(t, ws.WriteMessage(websocket.TextMessage, []byte(incompleteTranscript)))

	for i := 0; i < 6; i++ {
		var line LineRes
		utils.AssertNoError(t, ws.ReadJSON(&line))
		utils.AssertEqual(t, line.Number, i+1)
		utils.AssertEqual(t, line.Status, StatusCorrect)
	}

	var verdict VerdictRes
	utils.AssertNoError(t, ws.ReadJSON(&verdict))
	assert.False(t, verdict.Valid)
	assert.Contains(t, verdict.Error, "game did not end")
	assert.Empty(t, verdict.Lines)

	_, ok := store.FindVerdict(verdict.ID)
	utils.AssertTrue(t, ok)
}
