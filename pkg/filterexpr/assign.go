package filterexpr

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// assign stores a checked literal into field, allocating pointers and slices as needed.
func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("filterexpr: cannot store string in %s", field.Type())
		}
		field.SetString(v)
	case float64:
		return assignNumber(field, v)
	case time.Time:
		if field.Type() != timeType {
			return fmt.Errorf("filterexpr: cannot store timestamp in %s", field.Type())
		}
		field.Set(reflect.ValueOf(v.UTC()))
	case []any:
		if field.Kind() != reflect.Slice {
			return fmt.Errorf("filterexpr: cannot store list in %s", field.Type())
		}
		out := reflect.MakeSlice(field.Type(), len(v), len(v))
		for i, item := range v {
			if err := assign(out.Index(i), item); err != nil {
				return err
			}
		}
		field.Set(out)
	default:
		return fmt.Errorf("filterexpr: unsupported literal %T", value)
	}
	return nil
}

func assignNumber(field reflect.Value, value float64) error {
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		field.SetFloat(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if math.Trunc(value) != value {
			return invalidf("%v is not an integer", value)
		}
		if math.Abs(value) >= math.MaxInt64 || field.OverflowInt(int64(value)) {
			return invalidf("%v is out of range", value)
		}
		field.SetInt(int64(value))
	default:
		return fmt.Errorf("filterexpr: cannot store number in %s", field.Type())
	}
	return nil
}
