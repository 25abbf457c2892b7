package domain

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrMsgRateLimitExceeded   = "rate limit exceeded"
	ErrMsgInternalServerError = "internal server error"
	ErrMsgServiceUnavailable  = "service error: merchant store unavailable"
	ErrMsgBadRequest          = "bad request"
	ErrMsgParamsBadRequest    = "bad request: %s"
	ErrMsgAccessError         = "access error"

	ErrMsgMerchantEmailExists = "merchant with that email already exists"
	ErrMsgMerchantNotFound    = "merchant not found"
	ErrMsgInvalidMerchantId   = "invalid merchant id"
)

var (
	ErrMerchantNotFound = errors.New(ErrMsgMerchantNotFound)
	ErrDuplicateEmail   = errors.New(ErrMsgMerchantEmailExists)
	// a stored record is missing a mandatory field or cannot be decoded
	ErrValidation = errors.New("validation failure")
	// transport, connectivity or authentication failure of a store client
	ErrStoreUnavailable = errors.New("store unavailable")
)

const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreS3       = "s3"
)

// StoreError is a fatal outcome of a store adapter. It matches both its Kind
// (ErrValidation or ErrStoreUnavailable) and the underlying cause with errors.Is.
type StoreError struct {
	Store string
	Op    string
	Key   string
	Kind  error
	Err   error
}

func NewStoreError(store, op, key string, kind, err error) *StoreError {
	return &StoreError{Store: store, Op: op, Key: key, Kind: kind, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v: %v", e.Store, e.Op, e.Key, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func GetStatusByErr(err error) (status int) {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrMerchantNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		status = http.StatusBadRequest
	case errors.Is(err, ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}
	return status
}

func GetMsgByErr(err error) string {
	switch {
	case errors.Is(err, ErrMerchantNotFound):
		return ErrMsgMerchantNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return ErrMsgMerchantEmailExists
	case errors.Is(err, ErrStoreUnavailable):
		return ErrMsgServiceUnavailable
	default:
		return ErrMsgInternalServerError
	}
}
