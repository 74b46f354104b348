package helper

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rules maps a payload field to a pipe-delimited constraint string, e.g.
//
//	Rules{
//		"name":   "required|string|minLength:3|maxLength:255",
//		"typeId": "required|numeric",
//		"ids":    "required|array",
//		"ids.*":  "numeric",
//	}
//
// Supported constraints: required, string, numeric, array, email,
// minLength:N, maxLength:N, phone (10 digits), in:a,b,c.
type Rules map[string]string

var (
	validate   = validator.New()
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateMap checks a decoded JSON object against rules. Returns nil when
// every constraint passes; otherwise a per-field error list.
func ValidateMap(payload map[string]interface{}, rules Rules) ValidationErrors {
	var errs ValidationErrors

	for field, ruleStr := range rules {
		if strings.HasSuffix(field, ".*") {
			continue // element rules are applied by the owning array rule
		}
		value, present := payload[field]
		errs = append(errs, checkField(field, value, present, ruleStr)...)

		// element-wise rules for arrays
		if elemRules, ok := rules[field+".*"]; ok && present {
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Slice {
				for i := 0; i < rv.Len(); i++ {
					elem := rv.Index(i).Interface()
					errs = append(errs, checkField(fmt.Sprintf("%s.%d", field, i), elem, true, elemRules)...)
				}
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateStruct converts a request struct to a map keyed by json tags
// (nil pointers count as absent fields) and applies ValidateMap.
func ValidateStruct(payload interface{}, rules Rules) ValidationErrors {
	return ValidateMap(StructToMap(payload), rules)
}

func checkField(field string, value interface{}, present bool, ruleStr string) ValidationErrors {
	var errs ValidationErrors

	empty := !present || value == nil || isEmptyString(value)

	for _, rule := range strings.Split(ruleStr, "|") {
		name, arg := rule, ""
		if i := strings.IndexByte(rule, ':'); i >= 0 {
			name, arg = rule[:i], rule[i+1:]
		}

		switch name {
		case "required":
			if empty {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field is required", field)})
				return errs // no point checking the rest
			}
		case "string":
			if empty {
				continue
			}
			if _, ok := value.(string); !ok {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be a string", field)})
			}
		case "numeric":
			if empty {
				continue
			}
			if !isNumeric(value) {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be numeric", field)})
			}
		case "array":
			if empty {
				continue
			}
			if reflect.ValueOf(value).Kind() != reflect.Slice {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be an array", field)})
			}
		case "email":
			if empty {
				continue
			}
			if s, ok := value.(string); !ok || validate.Var(s, "email") != nil {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be a valid email", field)})
			}
		case "phone":
			if empty {
				continue
			}
			if !phoneRegex.MatchString(asString(value)) {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be a 10 digit number", field)})
			}
		case "minLength":
			if empty {
				continue
			}
			n, _ := strconv.Atoi(arg)
			if lengthOf(value) < n {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be at least %d characters", field, n)})
			}
		case "maxLength":
			if empty {
				continue
			}
			n, _ := strconv.Atoi(arg)
			if lengthOf(value) > n {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must not exceed %d characters", field, n)})
			}
		case "in":
			if empty {
				continue
			}
			allowed := strings.Split(arg, ",")
			got := asString(value)
			found := false
			for _, a := range allowed {
				if got == a {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, FieldError{field, fmt.Sprintf("The %s field must be one of: %s", field, arg)})
			}
		}
	}
	return errs
}

func isEmptyString(v interface{}) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func isNumeric(v interface{}) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return err == nil
	default:
		return false
	}
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func lengthOf(v interface{}) int {
	switch t := v.(type) {
	case string:
		return len([]rune(t))
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			return rv.Len()
		}
	}
	return 0
}

// StructToMap flattens a request struct into a json-tag keyed map.
// Nil pointers are omitted so "required" can tell absent from zero.
func StructToMap(payload interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return out
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return out
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag := strings.Split(f.Tag.Get("json"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			continue
		}
		out[tag] = fv.Interface()
	}
	return out
}
