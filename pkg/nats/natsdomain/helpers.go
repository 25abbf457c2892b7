package natsdomain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	DefaultReconnects = 2
	DefaultTimeout    = 5 * time.Second
)

// nats core
func (ns *Ns) ReqAndRecv(ctx context.Context, subject SubjType, jsonMsg []byte) ([]byte, error) {
	var reconnects int = DefaultReconnects
	var err error
	var response *nats.Msg

	for reconnects > 0 {
		response, err = sendrecv(ctx, ns.Nc, DefaultTimeout, subject, jsonMsg)
		if err != nil {
			if errors.Is(err, nats.ErrNoResponders) || ctx.Err() != nil {
				return nil, err
			}
			reconnects -= 1
			continue
		}
		break
	}

	if err != nil {
		return nil, err
	}

	if response != nil {
		return response.Data, nil
	}

	return nil, fmt.Errorf("unknown error: data == nil && err == nil")
}

func sendrecv(ctx context.Context, nc *nats.Conn, timeout time.Duration, subj SubjType, jsonMsg []byte) (*nats.Msg, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := nc.RequestWithContext(ctx, subj.String(), jsonMsg)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
