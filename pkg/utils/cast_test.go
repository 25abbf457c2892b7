package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeCast(t *testing.T) {
	cast, err := SafeCast[int](12334)
	require.NoError(t, err)
	assert.Equal(t, 12334, cast)

	_, err = SafeCast[string](nil)
	assert.ErrorIs(t, err, ErrNilParam)

	_, err = SafeCast[string](12)
	assert.ErrorContains(t, err, "want type: string")
}

func TestUnmarshal(t *testing.T) {
	type msg struct {
		Phonetic string `json:"phonetic"`
	}

	m, err := Unmarshal[msg](MustMarshal(msg{Phonetic: "/æn/"}))
	require.NoError(t, err)
	assert.Equal(t, "/æn/", m.Phonetic)

	_, err = Unmarshal[msg]([]byte("{"))
	assert.Error(t, err)
}
