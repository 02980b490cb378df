// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrayvec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. The live elements encode as a
// YAML sequence. Like MarshalJSON it takes a value receiver and copies
// the storage array.
func (v Vec[T, A]) MarshalYAML() (any, error) {
	return v.Slice(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Sequence items are decoded one at a time and pushed with TryPush.
// A sequence longer than Cap fails with *LengthError and leaves v
// unchanged.
func (v *Vec[T, A]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		v.Clear()
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("arrayvec: line %d: cannot unmarshal YAML %s into vec", node.Line, node.ShortTag())
	}

	i := 0
	out, err := decode[T, A](func(x *T) (bool, error) {
		if i == len(node.Content) {
			return false, nil
		}
		item := node.Content[i]
		i++
		return true, item.Decode(x)
	})
	if err != nil {
		return err
	}
	*v = out
	return nil
}
