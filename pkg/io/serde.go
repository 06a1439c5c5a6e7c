package io

import (
	"fmt"
	"reflect"
)

// Everything that goes through here has a fixed encoded width: fields are
// written in declaration order with no padding and no length prefixes, so
// the same value always produces the same bytes.

// Size returns the number of bytes Marshal produces for values of type_.
func Size(type_ reflect.Type) (int, error) {
	switch type_.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1, nil
	case reflect.Int16, reflect.Uint16:
		return 2, nil
	case reflect.Int32, reflect.Uint32:
		return 4, nil
	case reflect.Int64, reflect.Uint64:
		return 8, nil
	case reflect.Array:
		element, err := Size(type_.Elem())
		if err != nil {
			return 0, err
		}
		return element * type_.Len(), nil
	case reflect.Struct:
		total := 0
		for i := 0; i < type_.NumField(); i++ {
			field, err := Size(type_.Field(i).Type)
			if err != nil {
				return 0, fmt.Errorf("field %s: %w", type_.Field(i).Name, err)
			}
			total += field
		}
		return total, nil
	}

	return 0, fmt.Errorf("type %s has no fixed width", type_.String())
}

// SizeOf is Size for the type of v.
func SizeOf(v interface{}) (int, error) {
	return Size(reflect.TypeOf(v))
}

func unmarshalStruct(p *Buffer, type_ reflect.Type, value reflect.Value) error {
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("cannot unmarshal non-struct")
	}

	for i := 0; i < type_.NumField(); i++ {
		field := type_.Field(i)
		err := UnmarshalValue(p, field.Type, value.Field(i).Addr())
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

func UnmarshalValue(p *Buffer, type_ reflect.Type, valuePtr reflect.Value) error {
	if valuePtr.Kind() != reflect.Pointer {
		return fmt.Errorf("cannot unmarshal into non-pointer value")
	}

	value := valuePtr.Elem()

	switch type_.Kind() {
	case reflect.Bool:
		readValue, ok := p.GetByte()
		if !ok {
			return fmt.Errorf("error reading bool")
		}
		value.SetBool(readValue != 0)
	case reflect.Int8:
		readValue, ok := p.GetByte()
		if !ok {
			return fmt.Errorf("error reading int8")
		}
		value.SetInt(int64(int8(readValue)))
	case reflect.Uint8:
		readValue, ok := p.GetByte()
		if !ok {
			return fmt.Errorf("error reading byte")
		}
		value.SetUint(uint64(readValue))
	case reflect.Int16:
		readValue, ok := p.GetInt16()
		if !ok {
			return fmt.Errorf("error reading int16")
		}
		value.SetInt(int64(readValue))
	case reflect.Uint16:
		readValue, ok := p.GetUint16()
		if !ok {
			return fmt.Errorf("error reading uint16")
		}
		value.SetUint(uint64(readValue))
	case reflect.Int32:
		readValue, ok := p.GetInt32()
		if !ok {
			return fmt.Errorf("error reading int32")
		}
		value.SetInt(int64(readValue))
	case reflect.Uint32:
		readValue, ok := p.GetUint32()
		if !ok {
			return fmt.Errorf("error reading uint32")
		}
		value.SetUint(uint64(readValue))
	case reflect.Int64:
		readValue, ok := p.GetInt64()
		if !ok {
			return fmt.Errorf("error reading int64")
		}
		value.SetInt(readValue)
	case reflect.Uint64:
		readValue, ok := p.GetUint64()
		if !ok {
			return fmt.Errorf("error reading uint64")
		}
		value.SetUint(readValue)
	case reflect.Array:
		for i := 0; i < type_.Len(); i++ {
			err := UnmarshalValue(p, type_.Elem(), value.Index(i).Addr())
			if err != nil {
				return err
			}
		}
	case reflect.Struct:
		return unmarshalStruct(p, type_, value)
	default:
		return fmt.Errorf("unimplemented type: %s", type_.String())
	}

	return nil
}

func Unmarshal(p *Buffer, pieces ...interface{}) error {
	for _, piece := range pieces {
		err := UnmarshalValue(
			p,
			reflect.TypeOf(piece).Elem(),
			reflect.ValueOf(piece),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func marshalStruct(p *Buffer, type_ reflect.Type, value reflect.Value) error {
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("cannot marshal non-struct")
	}

	for i := 0; i < type_.NumField(); i++ {
		field := type_.Field(i)
		err := MarshalValue(p, field.Type, value.Field(i))
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

func MarshalValue(p *Buffer, type_ reflect.Type, value reflect.Value) error {
	if value.Kind() == reflect.Pointer {
		// we could support this, but it's a code smell because encoded
		// data by definition cannot "point" anywhere
		return fmt.Errorf("cannot marshal pointer to value")
	}

	switch type_.Kind() {
	case reflect.Bool:
		if value.Bool() {
			p.PutByte(1)
		} else {
			p.PutByte(0)
		}
	case reflect.Int8:
		p.PutByte(byte(int8(value.Int())))
	case reflect.Uint8:
		p.PutByte(byte(value.Uint()))
	case reflect.Int16:
		p.PutInt16(int16(value.Int()))
	case reflect.Uint16:
		p.PutUint16(uint16(value.Uint()))
	case reflect.Int32:
		p.PutInt32(int32(value.Int()))
	case reflect.Uint32:
		p.PutUint32(uint32(value.Uint()))
	case reflect.Int64:
		p.PutInt64(value.Int())
	case reflect.Uint64:
		p.PutUint64(value.Uint())
	case reflect.Array:
		// No need to put the number of elements if it's constant
		for i := 0; i < type_.Len(); i++ {
			err := MarshalValue(p, type_.Elem(), value.Index(i))
			if err != nil {
				return err
			}
		}
	case reflect.Struct:
		return marshalStruct(p, type_, value)
	default:
		return fmt.Errorf("unimplemented type: %s", type_.String())
	}

	return nil
}

func Marshal(p *Buffer, pieces ...interface{}) error {
	for _, piece := range pieces {
		type_ := reflect.TypeOf(piece)
		value := reflect.ValueOf(piece)

		err := MarshalValue(p, type_, value)
		if err != nil {
			return err
		}
	}

	return nil
}
