package nats

import (
	"context"
	"fmt"
	"os"
	"time"

	"merchant/api/internal/config"
	"merchant/api/internal/logger"
	"merchant/pkg/nats/natsdomain"

	"github.com/nats-io/nats.go"
)

type NatsInfra struct {
	*natsdomain.Ns
}

func Init(config *config.Config, log logger.Logger) *NatsInfra {
	nc, err := nats.Connect(config.Nats.Servers,
		nats.MaxReconnects(100),
		nats.ReconnectWait(3*time.Second),
		nats.DisconnectHandler(func(nc *nats.Conn) {
			log.TemplNatsInfo("disconnected", nc.ConnectedUrl())
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.TemplNatsInfo("reconnected", nc.ConnectedUrl())
		}))
	if err != nil {
		log.TemplNatsError("Connect failed", config.Nats.Servers, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// check connection, the phonetics service answers pings with "pong"
	msg, err := nc.RequestWithContext(ctx, natsdomain.SubjPing.String(), []byte("ping"))
	if err != nil {
		log.TemplNatsError("ping failed, phonetics lookups will degrade to empty", nc.ConnectedUrl(), err)
	} else if string(msg.Data) != "pong" {
		log.TemplNatsError("ping: wrong response", nc.ConnectedUrl(), fmt.Errorf("got %q", msg.Data))
	}

	fmt.Println("nats: Connected to", nc.ConnectedAddr())
	return &NatsInfra{&natsdomain.Ns{Nc: nc}}
}

func (n *NatsInfra) Close() {
	if n == nil || n.Nc == nil {
		return
	}
	_ = n.Nc.Drain()
}
