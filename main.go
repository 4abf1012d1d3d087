package main

import (
	"fmt"

	"github.com/hearts-online/server/config"
	"github.com/hearts-online/server/game"
	"github.com/hearts-online/server/log"
	"github.com/hearts-online/server/network"
	"github.com/hearts-online/server/service"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
		}
	}()
	conf, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	log.SetDebug(conf.Debug)
	srv := service.New(game.Options{
		DeckCopies:        conf.DeckCopies,
		RoundRestartDelay: conf.RoundRestartDelay,
	})
	if conf.TcpAddr != "" {
		go func() {
			log.Error(network.NewTcpServer(conf.TcpAddr, srv.Handle).Serve())
		}()
	}
	log.Error(network.NewWebsocketServer(conf.WsAddr, srv.Handle).Serve())
}
