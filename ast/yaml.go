package ast

import (
	"gopkg.in/yaml.v3"
)

// YAML dumps the tree as nested single key maps, e.g.
//
//	list:
//	    - sym: +
//	    - num: 1
func YAML(n Node) (string, error) {
	b, err := yaml.Marshal(yamlTree(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func yamlTree(n Node) any {
	switch n := n.(type) {
	case List:
		items := make([]any, 0, len(n.Elements))
		for _, e := range n.Elements {
			items = append(items, yamlTree(e))
		}
		return map[string]any{"list": items}
	case Num:
		return map[string]int64{"num": n.Value}
	case Sym:
		return map[string]string{"sym": n.Name}
	case Str:
		return map[string]string{"str": n.Value}
	}
	return nil
}
