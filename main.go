/*
Lumen demo application: a pulsing sphere and a hand-authored crystal lit
by an orbiting point light, rendered with the engine package.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/lumen/engine"
	"github.com/spaghettifunk/lumen/testbed"
)

func main() {
	config, err := engine.LoadApplicationConfig("lumen.toml")
	if err != nil {
		panic(err)
	}

	game := testbed.New(config)

	e, err := engine.New(game)
	if err != nil {
		panic(err)
	}

	if err := e.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		e.Quit()
	}()

	if err := e.Run(); err != nil {
		panic(err)
	}
}
