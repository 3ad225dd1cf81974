// Package utils holds small presentation helpers shared by the demo command;
// nothing in the json5 package depends on it.
package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/mtearle/json5tok/json5"
)

// TokenView is a JSON-serializable projection of a json5.Token, used only
// for debug/demo output. The library itself never materializes this shape.
type TokenView struct {
	Kind   string `json:"kind"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Size   int    `json:"size"`
	Parent int    `json:"parent"`
	Text   string `json:"text,omitempty"`
}

// TokenViews projects a parse Result's tokens into a flat, JSON-friendly
// slice suitable for PrettyPrint or a pp.Println.
func TokenViews(r json5.Result) []TokenView {
	views := make([]TokenView, len(r.Tokens))
	for i, t := range r.Tokens {
		view := TokenView{
			Kind:   t.Kind.String(),
			Start:  t.Start,
			End:    t.End,
			Size:   t.Size,
			Parent: t.Parent,
		}
		if t.Kind != json5.KindObject && t.Kind != json5.KindArray {
			view.Text = string(r.Source[t.Start:t.End])
		}
		views[i] = view
	}
	return views
}

// PrettyPrint prints val as indented JSON.
func PrettyPrint(val interface{}) {
	o, e := json.MarshalIndent(val, "", "  ")
	if e != nil {
		log.Panic(e.Error())
	}
	fmt.Print(string(o))
	fmt.Println()
}
