// Package dictionary is a client of the free dictionary API
// (https://dictionaryapi.dev) used to look up phonetic spellings.
package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const entriesPath = "/api/v2/entries/en/{word}"

type Client struct {
	http *resty.Client
}

type phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []phonetic `json:"phonetics"`
}

func New(baseUrl string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal

	return &Client{http: c}
}

// Entries returns the dictionary entries for word. A word the dictionary
// does not know yields no entries and no error.
func (c *Client) Entries(ctx context.Context, word string) ([]Entry, error) {
	var entries []Entry

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("word", word).
		SetResult(&entries).
		Get(entriesPath)
	if err != nil {
		return nil, fmt.Errorf("dictionary request: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, nil
	case resp.IsError():
		return nil, fmt.Errorf("dictionary: unexpected response code: %d", resp.StatusCode())
	}

	return entries, nil
}

// Phonetics returns the transcription of the first entry, "" when there is none.
func (c *Client) Phonetics(ctx context.Context, word string) (string, error) {
	entries, err := c.Entries(ctx, word)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	first := entries[0]
	if first.Phonetic != "" {
		return first.Phonetic, nil
	}
	for _, p := range first.Phonetics {
		if p.Text != "" {
			return p.Text, nil
		}
	}
	return "", nil
}
