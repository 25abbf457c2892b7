package natsdomain

// .core. - nats core request/reply
var Subjects = [...]string{"merchant.core.phonetics", "merchant.core.ping"}

type SubjType uint8

// nats core subjects
const (
	// merchant.core.phonetics
	SubjPhonetics SubjType = iota
	SubjPing
)

func (s SubjType) String() string {
	return Subjects[s]
}
