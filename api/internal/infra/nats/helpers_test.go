package nats

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestHelpersIsError(t *testing.T) {
	tests := []struct {
		data    []byte
		isValid bool
	}{
		{
			data:    []byte(""), // null string
			isValid: false,
		},
		{
			data:    []byte("error"), // != 'error:'
			isValid: false,
		},
		{
			data:    []byte("error:\t\t"),
			isValid: true,
		}, {
			data:    []byte("error:"),
			isValid: true,
		}, {
			data:    []byte("error: "),
			isValid: true,
		},
		{
			data:    []byte("error: " + gofakeit.LetterN(100)),
			isValid: true,
		},
		{
			data:    []byte("error: " + gofakeit.LetterN(100<<1)),
			isValid: true,
		},
		{
			data:    []byte("error: " + gofakeit.LetterN(1000<<1)),
			isValid: true,
		},
	}

	for _, i := range tests {
		is, errmsg := HelpersIsError(i.data)
		if i.isValid != is {
			t.Fatalf("i.isValid != is: %s", string(i.data))
		}

		t.Log("ERROR_MSG:", errmsg)
	}

	for i := 0; i < 10000; i++ {
		is, _ := HelpersIsError([]byte("error: " + gofakeit.LetterN(1000<<1)))
		if !is {
			t.Fatal("!is")
		}
	}
}

func TestHelpersParsePhonetics(t *testing.T) {
	tests := []struct {
		data     []byte
		isValid  bool
		phonetic string
	}{
		{
			[]byte(`{"phonetic":"/æn/"}`),
			true,
			"/æn/",
		},
		{
			[]byte(`{"phonetic":""}`),
			true,
			"",
		},
		{
			[]byte(`{}`),
			true,
			"",
		}, {
			[]byte(""),
			false,
			"",
		}, {
			[]byte(gofakeit.BuzzWord()),
			false,
			"",
		}, {
			[]byte("error: dictionary unavailable"),
			false,
			"",
		},
	}

	for _, i := range tests {
		phonetic, err := HelpersParsePhonetics(i.data)
		if i.isValid && err != nil {
			t.Fatalf("i.isValid && err != nil: %v", err)
		}
		if err != nil && !i.isValid {
			continue
		}
		if !i.isValid {
			t.Fatalf("expected error for %q", string(i.data))
		}

		if i.phonetic != phonetic {
			t.Fatalf("i.phonetic != phonetic: %s", phonetic)
		}
	}

}
