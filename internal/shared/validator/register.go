package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
// Field errors report the json (or form) name the client sent
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("availability", ValidateAvailability); err != nil {
		return fmt.Errorf("availability validator 등록 실패: %w", err)
	}
	if err := v.RegisterValidation("volunteer_status", ValidateStatus); err != nil {
		return fmt.Errorf("volunteer_status validator 등록 실패: %w", err)
	}

	slog.Debug("공통 Validator 등록 완료", "validators", "availability,volunteer_status")
	return nil
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
