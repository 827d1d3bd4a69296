package main

import (
	"flag"
	"os"

	"github.com/treeforest/basex/config"
	"github.com/treeforest/basex/internal/client"
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

	err = client.New(conf, os.Stdout).Run(flag.Args())
	if err == client.ErrUsage {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
