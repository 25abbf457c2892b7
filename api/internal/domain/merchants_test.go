package domain

import (
	"errors"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBusinessType(t *testing.T) {
	tests := []struct {
		in    string
		want  BusinessType
		valid bool
	}{
		{"SMALL", BusinessTypeSmall, true},
		{"medium", BusinessTypeMedium, true},
		{"Large", BusinessTypeLarge, true},
		{" medium ", BusinessTypeMedium, true},
		{"", "", false},
		{"huge", "", false},
	}

	for _, x := range tests {
		bt, err := ParseBusinessType(x.in)
		if !x.valid {
			require.ErrorIs(t, err, ErrValidation, x.in)
			continue
		}
		require.NoError(t, err, x.in)
		assert.Equal(t, x.want, bt)
	}
}

func TestMerchantsValidate(t *testing.T) {
	valid := Merchants{ID: 1, Name: gofakeit.Company(), Email: gofakeit.Email()}
	require.NoError(t, valid.Validate())

	t.Run("Should reject a record without id", func(t *testing.T) {
		m := valid
		m.ID = 0
		assert.ErrorIs(t, m.Validate(), ErrValidation)
	})

	t.Run("Should reject a record without name", func(t *testing.T) {
		m := valid
		m.Name = ""
		assert.ErrorIs(t, m.Validate(), ErrValidation)
	})

	t.Run("Should reject a record without email", func(t *testing.T) {
		m := valid
		m.Email = ""
		assert.ErrorIs(t, m.Validate(), ErrValidation)
	})

	t.Run("Should accept missing business type and phonetics", func(t *testing.T) {
		m := valid
		m.BusinessType = nil
		m.Phonetics = ""
		assert.NoError(t, m.Validate())
	})
}

func TestMerchantsJSONDocument(t *testing.T) {
	doc := []byte(`{"id":42,"name":"Ann","email":"a@x.com","businessType":"medium","phonetics":"/æn/"}`)

	var m Merchants
	require.NoError(t, json.Unmarshal(doc, &m))
	assert.Equal(t, uint(42), m.ID)
	assert.Equal(t, "42", m.IDString())
	require.NotNil(t, m.BusinessType)
	assert.Equal(t, BusinessTypeMedium, *m.BusinessType)

	err := json.Unmarshal([]byte(`{"id":1,"name":"Ann","email":"a@x.com","businessType":"giant"}`), &m)
	assert.Error(t, err)
}

func TestStoreError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := error(NewStoreError(StoreRedis, "hgetall", "merchant:1", ErrStoreUnavailable, cause))

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrValidation)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, StoreRedis, storeErr.Store)
	assert.Equal(t, http.StatusServiceUnavailable, GetStatusByErr(err))
}

func TestGetStatusByErr(t *testing.T) {
	assert.Equal(t, http.StatusOK, GetStatusByErr(nil))
	assert.Equal(t, http.StatusNotFound, GetStatusByErr(ErrMerchantNotFound))
	assert.Equal(t, http.StatusBadRequest, GetStatusByErr(ErrDuplicateEmail))
	assert.Equal(t, http.StatusInternalServerError, GetStatusByErr(NewStoreError(StoreS3, "decode", "merchants/1", ErrValidation, errors.New("bad json"))))
	assert.Equal(t, http.StatusInternalServerError, GetStatusByErr(errors.New("boom")))
}
