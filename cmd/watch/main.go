// watch - headless viewer for a running review server.
// Connects to the state feed and prints position and timeline envelopes as
// they arrive. Useful for checking sync behavior without a browser.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/cocreatr/sceneline/pkg/review"
	"github.com/cocreatr/sceneline/pkg/timeline"
)

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func main() {
	addr := flag.String("addr", "localhost:8080", "Review server host:port")
	flag.Parse()

	url := "ws://" + *addr + "/ws/state"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		stdlog.Fatalf("dial %s: %v", url, err)
	}
	defer conn.Close()
	fmt.Printf("Watching %s\n", url)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			stdlog.Fatalf("read: %v", err)
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}

		switch env.Type {
		case "position":
			var u review.PositionUpdate
			if err := json.Unmarshal(env.Data, &u); err != nil {
				continue
			}
			fmt.Printf("\rposition %6.2f%%  t=%8.3fs / %.3fs", u.Position*100, u.Time, u.Duration)

		case "timeline":
			var tr timeline.Track
			if err := json.Unmarshal(env.Data, &tr); err != nil {
				continue
			}
			fmt.Printf("\ntimeline: %d regions, duration %.3fs\n", len(tr.Regions), tr.Duration)
			for _, r := range tr.Regions {
				fmt.Printf("  %-22s %6.2f%% +%5.2f%%  [%.3f, %.3f]\n",
					r.Mode, r.Left, r.Width, r.Start, r.End)
			}
		}
	}
}
