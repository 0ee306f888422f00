package main

import (
	"log"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/semaphore"

	"github.com/mrsobakin/seawar/internal/session"
)

func NewServer() *server {
	nCPU := runtime.NumCPU()

	return &server{
		sessions: session.NewManager(),
		jobs:     semaphore.NewWeighted(int64(nCPU)),
		seeds:    newSeedSource(),
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("skipping .env:", err)
	}

	router := gin.Default()

	s := NewServer()
	s.RegisterEndpoints(router)

	addr := "127.0.0.1:4240"
	if env, ok := os.LookupEnv("SEAWAR_ADDR"); ok {
		addr = env
	}
	if len(os.Args) >= 2 {
		addr = os.Args[1]
	}

	log.Println(router.Run(addr))
}
