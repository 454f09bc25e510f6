package main

import (
	"github.com/rangehub/member_service/config"
	"github.com/rangehub/member_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
