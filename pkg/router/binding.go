package router

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindQuery fills obj from the request query string. Field names come from
// the json tag, falling back to the lowercased field name.
func bindQuery(r *http.Request, obj any) error {
	value := reflect.ValueOf(obj).Elem()
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("cannot bind query to %T", obj)
	}

	query := r.URL.Query()
	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get("json")
		name, _, _ = strings.Cut(name, ",")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		if name == "-" || !query.Has(name) {
			continue
		}

		if err := setField(value.Field(i), query.Get(name)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}

	return nil
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		parts := strings.Split(raw, ",")
		slice := reflect.MakeSlice(field.Type(), 0, len(parts))
		for _, p := range parts {
			slice = reflect.Append(slice, reflect.ValueOf(p).Convert(field.Type().Elem()))
		}
		field.Set(slice)

	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}

	return nil
}
