package protocol

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var clientSchemas = map[string]*jsonschema.Schema{
	TypeHello:     mustCompile("hello"),
	TypeGetRegion: mustCompile("get_region"),
	TypePlace:     mustCompile("place"),
	TypeSaveGame:  mustCompile("save_game"),
	TypeLoadGame:  mustCompile("load_game"),
}

func mustCompile(name string) *jsonschema.Schema {
	path := "schemas/" + name + ".schema.json"
	raw, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("missing embedded schema %s: %v", path, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(path, strings.NewReader(string(raw))); err != nil {
		panic(fmt.Sprintf("schema %s: %v", path, err))
	}
	s, err := c.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", path, err))
	}
	return s
}

// ValidateClient checks a raw client message of the given type against its
// schema. Types without a schema pass through.
func ValidateClient(msgType string, raw []byte) error {
	s, ok := clientSchemas[msgType]
	if !ok {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return s.Validate(v)
}
