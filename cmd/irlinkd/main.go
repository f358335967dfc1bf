package main

//go-build: CGO_ENABLED=0

import (
	"github.com/golang/glog"

	"github.com/robotalks/irlink/pkg/bridge"
	"github.com/robotalks/irlink/pkg/bridge/mqtt"
	"github.com/robotalks/irlink/pkg/bridge/websocket"
	"github.com/robotalks/irlink/pkg/env"
	fx "github.com/robotalks/irlink/pkg/framework"
	"github.com/robotalks/irlink/pkg/ir/sim"
)

func main() {
	conf := env.MustLoad()
	defer glog.Flush()

	link := sim.NewLoopback()
	if err := link.Begin(); err != nil {
		glog.Fatal(err)
	}

	var (
		pubs      bridge.Publishers
		subs      bridge.Subscribers
		runnables []fx.Runnable
	)
	if conf.MQTTURL != "" {
		q, err := mqtt.NewQueueFromURL(conf.MQTTURL)
		if err != nil {
			glog.Fatalf("mqtt: %v", err)
		}
		pubs, subs = append(pubs, q), append(subs, q)
		runnables = append(runnables, q)
	}
	if conf.WebsocketAddr != "" {
		hub := websocket.NewHub(conf.WebsocketAddr, conf.DeviceID)
		pubs, subs = append(pubs, hub), append(subs, hub)
		runnables = append(runnables, hub)
	}

	b := bridge.New(conf.DeviceID, link, pubs, subs)
	loop := fx.NewPollLoop(conf.PollInterval, b)
	b.OnSent = loop.TriggerNext
	runnables = append(runnables, b, loop)

	glog.Infof("device %s", conf.DeviceID)
	if err := fx.NewRunner().HandleSignals().Run(runnables...); err != nil {
		glog.Fatal(err)
	}
}
