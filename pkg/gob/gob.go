package gob

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

func Encode(e interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("gob encode failed: [%T] [%v]", e, err)
	}
	return buf.Bytes(), nil
}

func Decode(data []byte, o interface{}) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("gob decode failed: len[%d] obj[%T] error[%v]", len(data), o, err)
	}
	return nil
}
