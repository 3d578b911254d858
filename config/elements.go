package config

import (
	"fmt"
	"os"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"sigs.k8s.io/yaml"

	"github.com/vladimirvivien/csdview/element"
)

// ElementList is the content of an element file: the lists that replace
// the built-in persistent and variable elements.
//
//	persistent:
//	- symbol: C
//	  name: Carbon
//	  atomicWeight: 12
//	  atomicNumber: 6
//	variable:
//	- ...
type ElementList struct {
	Persistent []element.Element `json:"persistent"`
	Variable   []element.Element `json:"variable"`
}

// DefaultElements returns the built-in lists.
func DefaultElements() ElementList {
	return ElementList{
		Persistent: append([]element.Element(nil), element.Persistent...),
		Variable:   append([]element.Element(nil), element.Variable...),
	}
}

// LoadElements reads an element file. An empty path yields the built-in
// lists.
func LoadElements(path string) (ElementList, error) {
	if path == "" {
		return DefaultElements(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ElementList{}, fmt.Errorf("failed to read element file: %w", err)
	}

	var list ElementList
	if err := yaml.UnmarshalStrict(data, &list); err != nil {
		return ElementList{}, fmt.Errorf("failed to parse element file %s: %w", path, err)
	}
	if err := list.Validate(); err != nil {
		return ElementList{}, fmt.Errorf("element file %s: %w", path, err)
	}
	return list, nil
}

// Validate checks every element and rejects species listed twice.
func (l ElementList) Validate() error {
	var errs []error
	seen := make(map[element.Key]string)

	check := func(group string, elements []element.Element) {
		for i, e := range elements {
			where := fmt.Sprintf("%s[%d] %s", group, i, e)
			if e.Symbol == "" {
				errs = append(errs, fmt.Errorf("%s: symbol is empty", where))
			}
			if err := e.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
				continue
			}
			if first, ok := seen[e.Key()]; ok {
				errs = append(errs, fmt.Errorf("%s: same species as %s", where, first))
				continue
			}
			seen[e.Key()] = where
		}
	}
	check("persistent", l.Persistent)
	check("variable", l.Variable)

	return utilerrors.NewAggregate(errs)
}

// All returns persistent followed by variable elements.
func (l ElementList) All() []element.Element {
	return element.Builtin(l.Persistent, l.Variable)
}
