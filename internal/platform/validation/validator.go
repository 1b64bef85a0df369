// Package validation envuelve go-playground/validator con los tags propios del dominio
// y traduce sus errores a apperr.Validation con mensajes por campo JSON.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"shelter-admin/internal/platform/apperr"
)

const DateLayout = "2006-01-02"

var (
	validate     *validator.Validate
	validateOnce sync.Once

	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phone10Re     = regexp.MustCompile(`^\d{10}$`)
	shelterAddrRe = regexp.MustCompile(`^\d{1,6}\s+[A-Za-z0-9.'#/\- ]+(,\s*[A-Za-z0-9.'\- ]+)*$`)
)

// Denylist es la lista de subcadenas prohibidas en valores de filtro.
// El frontend aplica la misma lista antes de hacer fetch.
var Denylist = []string{";", "INSERT", "DROP TABLE", "@", "#", "$", "%", "^", "&", "(", ")"}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		mustRegister(v, "isodate", func(fl validator.FieldLevel) bool { return IsISODate(fl.Field().String()) })
		mustRegister(v, "appstatus", func(fl validator.FieldLevel) bool {
			_, ok := NormalizeStatus(fl.Field().String())
			return ok
		})
		mustRegister(v, "phone10", func(fl validator.FieldLevel) bool { return phone10Re.MatchString(fl.Field().String()) })
		mustRegister(v, "shelteraddr", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return len(s) <= 100 && shelterAddrRe.MatchString(s)
		})
		mustRegister(v, "denylist", func(fl validator.FieldLevel) bool { return !ContainsDenied(fl.Field().String()) })

		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct valida s y devuelve apperr.Validation con el primer problema encontrado.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Validation("invalid input")
	}
	return apperr.Validation(message(verrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "isodate":
		return field + " must be YYYY-MM-DD"
	case "appstatus":
		return field + " must be one of accepted, rejected, pending"
	case "phone10":
		return field + " must be exactly 10 digits"
	case "shelteraddr":
		return field + " must look like '123 Main St, City'"
	case "denylist":
		return field + " contains a forbidden character or keyword"
	case "gt", "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// IsISODate exige exactamente YYYY-MM-DD y una fecha real de calendario.
func IsISODate(s string) bool {
	if !isoDateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate asume que s ya pasó IsISODate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperr.Validation("date must be YYYY-MM-DD")
	}
	return t, nil
}

var statuses = map[string]string{
	"accepted": "Accepted",
	"rejected": "Rejected",
	"pending":  "Pending",
}

// NormalizeStatus acepta el estado sin importar mayúsculas y devuelve la forma guardada.
func NormalizeStatus(s string) (string, bool) {
	v, ok := statuses[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

// ContainsDenied compara sin distinguir mayúsculas contra Denylist.
func ContainsDenied(s string) bool {
	up := strings.ToUpper(s)
	for _, bad := range Denylist {
		if strings.Contains(up, bad) {
			return true
		}
	}
	return false
}
