package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"merchant/api/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/goccy/go-json"
)

type ObjectGetter interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

// S3Loader reads JSON documents of the entity. Id and email documents live in
// two namespaces that are not kept in sync with each other.
type S3Loader struct {
	client         ObjectGetter
	bucket         string
	idNamespace    string
	emailNamespace string
}

func NewS3Loader(client ObjectGetter, bucket, idNamespace, emailNamespace string) *S3Loader {
	return &S3Loader{client: client, bucket: bucket, idNamespace: idNamespace, emailNamespace: emailNamespace}
}

func (l *S3Loader) Name() string {
	return domain.StoreS3
}

func (l *S3Loader) IDKey(id string) string {
	return l.idNamespace + "/" + id
}

func (l *S3Loader) EmailKey(email string) string {
	return l.emailNamespace + "/" + email
}

func (l *S3Loader) LoadMerchant(ctx context.Context, id string) (*domain.Merchants, bool, error) {
	return l.loadObject(ctx, l.IDKey(id))
}

func (l *S3Loader) LoadMerchantByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error) {
	// "merchants-email/" is the namespace itself, not a document
	if email == "" {
		return nil, false, nil
	}
	return l.loadObject(ctx, l.EmailKey(email))
}

func (l *S3Loader) loadObject(ctx context.Context, key string) (*domain.Merchants, bool, error) {
	out, err := l.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if isNotFoundError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.NewStoreError(domain.StoreS3, "get object", key, domain.ErrStoreUnavailable, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, domain.NewStoreError(domain.StoreS3, "read object", key, domain.ErrStoreUnavailable, err)
	}

	var merchant domain.Merchants
	if err := json.Unmarshal(body, &merchant); err != nil {
		return nil, false, domain.NewStoreError(domain.StoreS3, "decode", key, domain.ErrValidation, fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}
	if err := merchant.Validate(); err != nil {
		return nil, false, domain.NewStoreError(domain.StoreS3, "decode", key, domain.ErrValidation, err)
	}

	return &merchant, true, nil
}

// isNotFoundError returns true if the error indicates the object doesn't exist.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if code == "NoSuchKey" || code == "NotFound" {
			return true
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == http.StatusNotFound
	}

	return false
}
