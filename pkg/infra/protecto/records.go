package protecto

import (
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/mitchellh/mapstructure"
	"github.com/valyala/fastjson"
)

const attributesKey = "attributes"

var parserPool fastjson.ParserPool

// parseRecords flattens a query-execution-result payload into a table.
// Nested objects, the Salesforce "attributes" block included, are dropped;
// scalars and arrays are kept and retry is coerced to a boolean.
func parseRecords(body []byte) (*masking.Table, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	root, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid records payload: %w", err)
	}

	table := &masking.Table{
		Columns: append([]string(nil), masking.FixedColumns...),
		Records: make([]masking.Record, 0),
	}
	seen := make(map[string]struct{}, len(masking.FixedColumns))
	for _, c := range masking.FixedColumns {
		seen[c] = struct{}{}
	}

	for i, raw := range root.GetArray("records") {
		obj, err := raw.Object()
		if err != nil {
			return nil, fmt.Errorf("record %d is not an object: %w", i, err)
		}

		flat := make(map[string]interface{}, obj.Len())
		obj.Visit(func(key []byte, v *fastjson.Value) {
			k := string(key)
			if k == attributesKey || v.Type() == fastjson.TypeObject {
				return
			}
			flat[k] = toInterface(v)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				table.Columns = append(table.Columns, k)
			}
		})
		flat[masking.ColumnRetry] = truthy(raw.Get(masking.ColumnRetry))

		record, err := decodeRecord(flat)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		table.Records = append(table.Records, record)
	}
	return table, nil
}

func decodeRecord(flat map[string]interface{}) (masking.Record, error) {
	var record masking.Record
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &record,
	})
	if err != nil {
		return record, err
	}
	if err := decoder.Decode(flat); err != nil {
		return record, err
	}
	if record.Attributes == nil {
		record.Attributes = map[string]interface{}{}
	}
	return record, nil
}

func toInterface(v *fastjson.Value) interface{} {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return n
		}
		return v.GetFloat64()
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeArray:
		items := v.GetArray()
		out := make([]interface{}, 0, len(items))
		for _, item := range items {
			out = append(out, toInterface(item))
		}
		return out
	default:
		return nil
	}
}

// truthy applies loose truthiness: missing, null, false, zero and empty
// values are false.
func truthy(v *fastjson.Value) bool {
	if v == nil {
		return false
	}
	switch v.Type() {
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeNumber:
		return v.GetFloat64() != 0
	case fastjson.TypeString:
		return len(v.GetStringBytes()) > 0
	case fastjson.TypeArray:
		return len(v.GetArray()) > 0
	case fastjson.TypeObject:
		o, _ := v.Object()
		return o != nil && o.Len() > 0
	default:
		return false
	}
}
