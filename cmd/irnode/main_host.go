//go:build !tinygo
// +build !tinygo

// Command irnode is the firmware of an IR node. Build it with TinyGo.
package main

import "github.com/golang/glog"

func main() {
	glog.Exit("irnode must be built with tinygo")
}
