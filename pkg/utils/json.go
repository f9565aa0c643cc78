package utils

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata qualquer valor como JSON indentado; []byte é tratado como JSON pronto
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	}

	// jsoniter só aceita indentação com espaços
	var out bytes.Buffer
	if err = stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		fmt.Println(err)
		return string(buffer)
	}

	return out.String()
}
