package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// bindError translates an echo bind failure. A JSON value of the wrong type
// for a known field is a validation problem and surfaces as 422 with the
// field named; anything else is a malformed payload and stays 400.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		var ute *json.UnmarshalTypeError
		if errors.As(he.Internal, &ute) && ute.Field != "" {
			return domain.NewValidationError(ute.Field, ute.Field+" must be "+typeName(ute.Type))
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "of type " + t.String()
	}
}
