package rjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// EncodeJSON renders a value as strict JSON for interchange. The permissive
// extensions are folded away: undefined and Null both encode as null, and
// comments are dropped. Member order is preserved. NaN and infinities have
// no JSON representation and are rejected.
func EncodeJSON(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, v *Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}

	switch v.kind {
	case KindUndefined, KindNull:
		buf.WriteString("null")

	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))

	case KindInt:
		buf.WriteString(strconv.FormatInt(v.intVal, 10))

	case KindDouble:
		if math.IsNaN(v.doubleVal) || math.IsInf(v.doubleVal, 0) {
			return fmt.Errorf("rjson: %v is not representable in JSON", v.doubleVal)
		}
		buf.WriteString(strconv.FormatFloat(v.doubleVal, 'g', -1, 64))

	case KindString:
		return writeJSONString(buf, v.strVal)

	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, m.name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeJSON(buf, m.value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// DecodeJSON builds a Value tree from strict JSON. The decoder walks the
// token stream so object member order survives the round trip; whole
// numbers become ints, everything else a double.
func DecodeJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("rjson: trailing data after JSON value")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			arr := Array()
			for dec.More() {
				elem, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Add(elem)
			}
			if _, err := dec.Token(); err != nil { // consume ]
				return nil, err
			}
			return arr, nil

		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("rjson: object key %v is not a string", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume }
				return nil, err
			}
			return obj, nil

		default:
			return nil, fmt.Errorf("rjson: unexpected delimiter %v", t)
		}

	case bool:
		return Bool(t), nil

	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return Int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return Double(f), nil

	case string:
		return Str(t), nil

	case nil:
		return Null(), nil

	default:
		return nil, fmt.Errorf("rjson: unexpected JSON token %v", tok)
	}
}
