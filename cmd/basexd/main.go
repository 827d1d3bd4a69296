package main

import (
	"flag"
	"time"

	"github.com/treeforest/basex/config"
	"github.com/treeforest/basex/internal/server"
	"github.com/treeforest/basex/pkg/graceful"
	"github.com/treeforest/basex/walletmgr"
	log "github.com/treeforest/logger"
)

func main() {
	path := flag.String("conf", "config.yaml", "config path")
	flag.Parse()

	conf, err := config.Load(*path)
	if err != nil {
		log.Fatal("load config failed: ", err)
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}

	mgr, err := walletmgr.Open(conf.WalletDBPath)
	if err != nil {
		log.Fatal("open wallets failed: ", err)
	}

	srv := server.NewHttpServer(conf.HttpServerPort, mgr)
	go srv.Run()

	graceful.StopWithTime(time.Second, func() {
		srv.Stop()
		if err := mgr.Close(); err != nil {
			log.Warn("close wallets failed: ", err)
		}
	})
}
