package nats

import (
	"context"
	"fmt"

	"merchant/pkg/nats/natsdomain"
	"merchant/pkg/utils"
)

// checks if there is an error in the response. if there is, it returns true and the error message
func HelpersIsError(data []byte) (bool, string) {
	if len(data) < 6 {
		return false, ""
	}

	if string(data[0:6]) == "error:" {
		return true, string(data[6:])

	}
	return false, ""
}

// Phonetics asks the phonetics service for a transcription of name.
// An empty string with a nil error means the name has no transcription.
func (n *NatsInfra) Phonetics(ctx context.Context, name string) (string, error) {
	resp, err := n.ReqAndRecv(ctx, natsdomain.SubjPhonetics, utils.MustMarshal(natsdomain.ReqPhonetics{Name: name}))
	if err != nil {
		return "", fmt.Errorf("reqAndRecv error: %w", err)
	}

	return HelpersParsePhonetics(resp)
}

func HelpersParsePhonetics(resp []byte) (string, error) {
	isError, errmsg := HelpersIsError(resp)
	if isError {
		return "", fmt.Errorf("error in phonetics response: %s", errmsg)
	}

	msg, err := utils.Unmarshal[natsdomain.ResPhonetics](resp)
	if err != nil {
		return "", fmt.Errorf("unmarshal error: %w", err)
	}

	return msg.Phonetic, nil
}
