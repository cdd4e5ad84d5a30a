package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeList decodifica uma lista de recursos tolerando os três formatos de
// payload usados pelos serviços de backend, nesta ordem:
//
//  1. array puro: `[...]`
//  2. objeto com o campo do recurso: `{"campaigns": [...]}`
//  3. objeto com campo genérico: `{"data": [...]}`
//
// Quando nenhum formato casa, out recebe uma lista vazia em vez de erro: o
// backend não tem envelope uniforme entre endpoints e a camada de
// normalização é exatamente este ponto.
func DecodeList(data []byte, key string, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("envelope: out deve ser um ponteiro para slice, recebido %T", out)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		emptyList(rv)
		return nil
	}

	// Formato 1: array puro
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return codec.Unmarshal(data, out)
	}

	var wrapper map[string]json.RawMessage
	if err := codec.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	// Formato 2: campo nomeado pelo recurso
	if raw, ok := wrapper[key]; ok && isArray(raw) {
		return codec.Unmarshal(raw, out)
	}

	// Formato 3: campo genérico "data"
	if raw, ok := wrapper["data"]; ok && isArray(raw) {
		return codec.Unmarshal(raw, out)
	}

	emptyList(rv)
	return nil
}

// DecodeObject decodifica um único recurso, desembrulhando o campo "data"
// quando presente
func DecodeObject(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("envelope: payload vazio")
	}

	var wrapper map[string]json.RawMessage
	if err := codec.Unmarshal(data, &wrapper); err != nil {
		return codec.Unmarshal(data, out)
	}

	if raw, ok := wrapper["data"]; ok && isObject(raw) {
		return codec.Unmarshal(raw, out)
	}

	return codec.Unmarshal(data, out)
}

func isArray(raw []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("["))
}

func isObject(raw []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}

func emptyList(rv reflect.Value) {
	rv.Elem().Set(reflect.MakeSlice(rv.Elem().Type(), 0, 0))
}
