package v1

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"merchant/api/internal/domain"
	"merchant/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindBody decodes the JSON body into data and validates it. On failure the
// 400 response is already written and false is returned.
func bindBody[T any](c *gin.Context, data *T) bool {
	if err := c.ShouldBindJSON(data); err != nil {
		msg := domain.ErrMsgBadRequest
		if strings.Contains(err.Error(), "business type") {
			msg = fmt.Sprintf(domain.ErrMsgParamsBadRequest, "field 'businessType' must be one of 'SMALL MEDIUM LARGE'")
		}
		responseErr(c, http.StatusBadRequest, msg, "")
		return false
	}

	err := validate.Struct(data)
	if err == nil {
		return true
	}

	validationErrs, err := utils.SafeCast[validator.ValidationErrors](err)
	if err != nil || len(validationErrs) == 0 {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return false
	}

	responseErr(c, http.StatusBadRequest, formatValidationErr(*data, validationErrs[0]), "")
	return false
}

func formatValidationErr(data any, err validator.FieldError) string {
	jsonTag := getJSONTag(data, err.StructField())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", jsonTag)
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email", jsonTag)
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters long", jsonTag, err.Param())
	default:
		return fmt.Sprintf("invalid field '%s'", jsonTag)
	}
}

func getJSONTag(structType any, fieldName string) string {
	typ := reflect.TypeOf(structType)
	field, _ := typ.FieldByName(fieldName)
	tag := field.Tag.Get("json")
	if tag == "" {
		return fieldName
	}
	return tag
}
