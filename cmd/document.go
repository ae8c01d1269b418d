package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ms-henglu/valkit/internal/hcl"
	"github.com/ms-henglu/valkit/internal/log"
	"github.com/ms-henglu/valkit/internal/source"
	"github.com/ms-henglu/valkit/internal/tree"
	"github.com/ms-henglu/valkit/internal/value"
	"github.com/spf13/cobra"
)

// RecordsAttribute names the list inside a mapping document that holds the
// records of the group and filter-countries commands.
const RecordsAttribute = "records"

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatHCL  = "hcl"
	formatTree = "tree"
)

// documentOptions are the input and output flags shared by the commands that
// read documents.
type documentOptions struct {
	inputFormat string
	format      string
}

func (o *documentOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.inputFormat, "input-format", formatAuto, "Input format: auto, json or hcl. auto picks hcl for .hcl files and json otherwise")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatJSON, "Output format: json, hcl or tree")
}

// load reads src and decodes it as JSON or HCL.
func (o *documentOptions) load(ctx context.Context, src string) (value.Value, error) {
	log.Debug("Reading %s...", src)
	data, err := source.Read(ctx, src)
	if err != nil {
		return value.Value{}, err
	}

	format, err := inputFormatOf(src, o.inputFormat)
	if err != nil {
		return value.Value{}, err
	}
	switch format {
	case formatHCL:
		return hcl.Decode(data, filepath.Base(stripQuery(src)))
	default:
		v, err := value.ParseJSON(data)
		if err != nil {
			return value.Value{}, fmt.Errorf("failed to parse %s: %w", src, err)
		}
		return v, nil
	}
}

// write renders v to w. HCL output needs a mapping, so any other value is
// written as the single attribute name.
func (o *documentOptions) write(w io.Writer, name string, v value.Value) error {
	switch o.format {
	case formatJSON:
		data, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("failed to indent output: %w", err)
		}
		buf.WriteByte('\n')
		_, err = w.Write(buf.Bytes())
		return err
	case formatHCL:
		if v.Kind() != value.Mapping {
			v = value.MappingVal(value.Entry{Key: name, Value: v})
		}
		data, err := hcl.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to write HCL: %w", err)
		}
		_, err = w.Write(data)
		return err
	case formatTree:
		tree.Fprint(w, tree.FromValue(name, v))
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected json, hcl or tree", o.format)
	}
}

func inputFormatOf(src, flag string) (string, error) {
	switch flag {
	case formatJSON, formatHCL:
		return flag, nil
	case formatAuto, "":
		if strings.EqualFold(filepath.Ext(stripQuery(src)), ".hcl") {
			return formatHCL, nil
		}
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unknown input format %q, expected auto, json or hcl", flag)
	}
}

// stripQuery drops go-getter query arguments such as ?ref=v1.0.0.
func stripQuery(src string) string {
	if i := strings.Index(src, "?"); i >= 0 {
		return src[:i]
	}
	return src
}

// recordsOf returns the records of doc: the document itself when it is a
// sequence, otherwise its records attribute.
func recordsOf(doc value.Value) ([]value.Value, error) {
	switch doc.Kind() {
	case value.Sequence:
		return doc.Items(), nil
	case value.Mapping:
		records, ok := doc.Get(RecordsAttribute)
		if ok && records.Kind() == value.Sequence {
			return records.Items(), nil
		}
	}
	return nil, fmt.Errorf("%w: expected a list of records or a %q attribute holding one", value.ErrInvalidArgument, RecordsAttribute)
}
