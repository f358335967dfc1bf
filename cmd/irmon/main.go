package main

import (
	"flag"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/robotalks/irlink/pkg/bridge"
	"github.com/robotalks/irlink/pkg/bridge/msgs"
	"github.com/robotalks/irlink/pkg/bridge/mqtt"
	fx "github.com/robotalks/irlink/pkg/framework"
)

var (
	mqttURL = "mqtt://localhost:1883/irlink/"
)

func init() {
	if val := os.Getenv("IRLINK_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Fatal(err)
	}

	q.Sub("+/"+bridge.RxSuffix, func(topic string, payload []byte) {
		device := strings.TrimSuffix(topic, "/"+bridge.RxSuffix)
		msg, err := msgs.DecodeByteReceived(payload)
		if err != nil {
			glog.Warningf("%s: bad message: %v", topic, err)
			return
		}
		glog.Infof("%s: #%d %#02x at %s", device, msg.Seq, msg.Value, msg.Time().Format("15:04:05.000000"))
	})

	if err := fx.NewRunner().HandleSignals().Go(q).Wait(); err != nil {
		glog.Fatal(err)
	}
}
