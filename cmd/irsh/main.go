package main

import (
	"github.com/golang/glog"

	"github.com/robotalks/irlink/pkg/cli/sh"
	"github.com/robotalks/irlink/pkg/ir/sim"
)

//go-build: CGO_ENABLED=0

func main() {
	link := sim.NewLoopback()
	if err := link.Begin(); err != nil {
		glog.Fatal(err)
	}
	sh.Main(link)
}
