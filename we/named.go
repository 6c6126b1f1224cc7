package we

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf derives a `package:kebab-type` name for value unless it names itself.
func NameOf(value any) string {
	if typed, ok := value.(Named); ok {
		return typed.TypeName()
	}

	if value == nil {
		return "nil"
	}

	split := strings.Split(reflect.TypeOf(value).String(), ".")
	segments := make([]string, len(split))
	for i, segment := range split {
		s := strings.TrimLeft(segment, "*")
		segments[i] = strcase.ToKebab(s)
	}

	if len(segments) == 1 {
		return segments[0]
	}

	namespace := segments[0]
	name := strings.Join(segments[1:], "-")

	return namespace + ":" + name
}

type StateType string

func (st StateType) String() string {
	return string(st)
}

type StateTyped interface {
	StateType() StateType
}

func StateTypeOf(state any) StateType {
	if typed, ok := state.(StateTyped); ok {
		return typed.StateType()
	}

	return StateType(NameOf(state))
}
