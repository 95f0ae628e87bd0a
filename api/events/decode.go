package eventsapi

import (
	"math"
	"reflect"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"

	"github.com/mitchellh/mapstructure"
)

// decodeInfo decodes a command's info into out. JSON numbers arrive as
// float64, so integer fields only accept whole values that fit the field.
func decodeInfo(info interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: wholeNumberHook,
		Result:     out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(info)
}

func wholeNumberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, custerror.FormatInvalidArgument("%v is not a whole number", data)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 || reflect.Zero(to).OverflowInt(int64(f)) {
		return nil, custerror.FormatInvalidArgument("%v overflows %s", data, to)
	}
	return int64(f), nil
}
