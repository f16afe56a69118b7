package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/warlog/game"
	"github.com/minaorangina/warlog/protocol"
	uuid "github.com/satori/go.uuid"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// line statuses reported per annotated line
const (
	StatusCorrect = "correct"
	StatusWrong   = "wrong"
	StatusIgnore  = "ignore"
)

type ValidateReq struct {
	Transcript string `json:"transcript"`
}

type LineRes struct {
	Number int    `json:"number"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

type ClassifyRes struct {
	Lines     []LineRes `json:"lines"`
	Erroneous []int     `json:"erroneous_lines"`
}

type VerdictRes struct {
	ID         string    `json:"verdict_id"`
	Valid      bool      `json:"is_valid"`
	LineNumber int       `json:"line_number,omitempty"`
	State      string    `json:"state"`
	Error      string    `json:"error,omitempty"`
	Lines      []LineRes `json:"lines,omitempty"`
}

// ValidatorServer is a transcript validation server
type ValidatorServer struct {
	store VerdictStore
	http.Server
}

func NewID() string {
	return uuid.NewV4().String()
}

func enableCors(handler http.HandlerFunc) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		handler.ServeHTTP(w, r)
	}
}

// NewServer creates a new ValidatorServer
func NewServer(store VerdictStore) *ValidatorServer {
	s := new(ValidatorServer)

	router := http.NewServeMux()
	router.Handle("/validate", http.HandlerFunc(enableCors(s.HandleValidate)))
	router.Handle("/classify", http.HandlerFunc(enableCors(s.HandleClassify)))
	router.Handle("/verdict/", http.HandlerFunc(s.HandleVerdict))
	router.Handle("/ws", http.HandlerFunc(enableCors(s.HandleWS)))

	s.store = store
	s.Handler = handlers.LoggingHandler(os.Stdout, router)

	return s
}

// ServeHTTP serves http
func (v *ValidatorServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v.Handler.ServeHTTP(w, r)
}

// HandleValidate runs a full validation and stores the verdict under a new ID
func (v *ValidatorServer) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data ValidateReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	verdict := verdict(NewID(), data.Transcript)

	if err := v.store.AddVerdict(verdict); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, verdict)
}

// HandleVerdict returns a previously stored verdict
func (v *ValidatorServer) HandleVerdict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	verdictID := strings.Replace(r.URL.String(), "/verdict/", "", 1)
	if verdictID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing verdict ID"))
		return
	}

	verdict, ok := v.store.FindVerdict(verdictID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownVerdictIDMsg(verdictID)))
		return
	}

	writeJSON(w, http.StatusOK, verdict)
}

// HandleClassify annotates each line without judging the game itself
func (v *ValidatorServer) HandleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data ValidateReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	lines := annotate(splitLines(data.Transcript))

	payload := ClassifyRes{Lines: lines, Erroneous: []int{}}
	for _, line := range lines {
		if line.Status == StatusWrong {
			payload.Erroneous = append(payload.Erroneous, line.Number)
		}
	}

	writeJSON(w, http.StatusOK, payload)
}

// HandleWS streams one annotated line per message, then the final verdict
func (v *ValidatorServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.Close()

	_, transcript, err := conn.ReadMessage()
	if err != nil {
		log.Println(err)
		return
	}

	for _, line := range annotate(splitLines(string(transcript))) {
		if err := conn.WriteJSON(line); err != nil {
			log.Println(err)
			return
		}
	}

	final := verdict(NewID(), string(transcript))
	final.Lines = nil

	if err := v.store.AddVerdict(final); err != nil {
		log.Println(err.Error())
		return
	}

	if err := conn.WriteJSON(final); err != nil {
		log.Println(err)
	}
}

// verdict runs a fresh validation over the whole transcript
func verdict(id, transcript string) VerdictRes {
	lines := splitLines(transcript)
	result := game.NewValidator().Validate(lines)

	payload := VerdictRes{
		ID:    id,
		Valid: result.Err == nil,
		State: result.State.String(),
		Lines: annotate(lines),
	}

	if result.Err != nil {
		payload.LineNumber = result.LineNumber
		payload.Error = result.Err.Error()
	}

	return payload
}

// annotate classifies every line independently of game state
func annotate(lines []string) []LineRes {
	classifier := protocol.DefaultClassifier()

	annotated := make([]LineRes, 0, len(lines))
	for i, raw := range lines {
		line := classifier.Classify(raw)
		annotated = append(annotated, LineRes{
			Number: i + 1,
			Kind:   line.Kind().String(),
			Text:   raw,
			Status: lineStatus(line.Kind()),
		})
	}
	return annotated
}

func lineStatus(kind protocol.Kind) string {
	switch kind {
	case protocol.Malformed:
		return StatusWrong
	case protocol.Empty:
		return StatusIgnore
	}
	return StatusCorrect
}

func splitLines(transcript string) []string {
	return strings.Split(transcript, "\n")
}

func unknownVerdictIDMsg(unknownID string) string {
	return "unknown verdict ID '" + unknownID + "'"
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err == io.EOF {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	if err != nil {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
	}
}
