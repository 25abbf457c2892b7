package natsdomain

import (
	"github.com/nats-io/nats.go"
)

// nats struct
type Ns struct {
	Nc *nats.Conn
}

type ReqPhonetics struct {
	Name string `json:"name"`
}

// Phonetic is empty when the name has no known transcription
type ResPhonetics struct {
	Phonetic string `json:"phonetic"`
}
