//go:build js

// Command web runs the application inside a browser canvas.
// Serve it with
//
//	go tool wasmserve ./web
package main

import (
	"log/slog"

	"github.com/oliverbestmann/halo/glimpse"
	"github.com/oliverbestmann/halo/orion"
	"github.com/oliverbestmann/halo/stage"
)

func main() {
	orion.ConfigureLogging(slog.LevelInfo)

	opts := orion.RunOptions{
		WindowOptions: glimpse.WindowOptions{Title: "halo"},

		NewHandler: func(win glimpse.Window) (orion.Handler, error) {
			return stage.New(win, stage.Options{})
		},
	}

	err := orion.Run(opts)
	orion.Handle(err, "run application")
}
