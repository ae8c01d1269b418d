package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/ms-henglu/valkit/internal/utils"
	"github.com/ms-henglu/valkit/internal/value"
)

// Decode parses an HCL document made of top-level attributes into a mapping.
// Attributes keep the order they appear in the file. Expressions are
// evaluated without variables or functions, so only literal values are
// accepted. Blocks are not part of the value model and are rejected.
func Decode(data []byte, filename string) (value.Value, error) {
	f, diags := hclsyntax.ParseConfig(data, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return value.Value{}, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return value.Value{}, fmt.Errorf("failed to parse %s: unexpected body type %T", filename, f.Body)
	}
	if len(body.Blocks) > 0 {
		b := body.Blocks[0]
		return value.Value{}, fmt.Errorf("%s:%d: blocks are not supported, found %q", filename, b.TypeRange.Start.Line, b.Type)
	}

	attrs := SortedAttributes(body)
	out := value.MappingVal()
	for _, attr := range attrs {
		ctyVal, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return value.Value{}, fmt.Errorf("failed to evaluate %s: %s", attr.Name, diags.Error())
		}
		v, err := utils.FromCtyValue(ctyVal)
		if err != nil {
			return value.Value{}, fmt.Errorf("failed to convert %s: %w", attr.Name, err)
		}
		out.Set(attr.Name, v)
	}
	return out, nil
}

// SortedAttributes returns the attributes of body in source order.
func SortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

// Encode writes a mapping as formatted HCL attributes in key order. Nested
// objects are written by hclwrite, which orders their keys lexically.
func Encode(v value.Value) ([]byte, error) {
	if v.Kind() != value.Mapping {
		return nil, fmt.Errorf("%w: only mappings can be written as HCL, got %s", value.ErrInvalidArgument, v.Kind())
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, key := range v.Keys() {
		if !hclsyntax.ValidIdentifier(key) {
			return nil, fmt.Errorf("%w: %q is not a valid HCL attribute name", value.ErrInvalidArgument, key)
		}
		item, _ := v.Get(key)
		body.SetAttributeValue(key, utils.ToCtyValue(item))
	}
	return hclwrite.Format(f.Bytes()), nil
}
