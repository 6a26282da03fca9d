package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// stringList evaluates a manifest list attribute into its Go form. A missing
// attribute yields nil; anything that is not a sequence of strings is a
// decode error attributed to the named attribute.
func stringList(expr hcl.Expression, attrName string) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate %q: %s", attrName, diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("attribute %q must be a list of strings, got %s", attrName, val.Type().FriendlyName())
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		strVal, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("attribute %q contains a non-string element: %v", attrName, err)
		}
		if strVal.IsNull() {
			return nil, fmt.Errorf("attribute %q contains a null element", attrName)
		}
		out = append(out, strVal.AsString())
	}
	return out, nil
}
