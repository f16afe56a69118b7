package main

import (
	"log"
	"net/http"

	"github.com/minaorangina/warlog/server"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(server.NewInMemoryVerdictStore())
	log.Printf("Listening on %s...", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), s))
}
