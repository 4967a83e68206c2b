// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/databrowse/base/errors"
)

// SetFromDefaults sets the fields of the given struct pointer from
// their `default:` struct field tag values, recursing into struct
// fields without a tag. Slice, map and struct values are given in
// JSON, where single quotes stand for double quotes. Errors are
// logged in addition to being returned.
func SetFromDefaults(obj any) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaults: %T is not a struct pointer", obj)
	}
	return errors.Log(setDefaults(v.Elem()))
}

func setDefaults(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, setDefaults(fv))
			}
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaults: field %s.%s from %q: %w", typ.Name(), f.Name, def, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the value from its string representation.
func setString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice, reflect.Map, reflect.Struct:
		s = strings.ReplaceAll(s, `'`, `"`)
		return json.Unmarshal([]byte(s), v.Addr().Interface())
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
