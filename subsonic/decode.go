package subsonic

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

// decodeState carries per-call scratch state. A Caser must not be shared
// between goroutines, so every decode gets its own.
type decodeState struct {
	fold cases.Caser
	// textRecords reads a bare string as {"value": s} where a record is
	// expected. XML folds <lyrics>text</lyrics> to a string.
	textRecords bool
}

func newDecodeState(format Format) *decodeState {
	return &decodeState{fold: cases.Fold(), textRecords: format == FormatXML}
}

// decodeRecordAs fills a fresh T from src using T's field table. format is the
// serialization src was parsed from.
func decodeRecordAs[T any](src map[string]any, format Format) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	name := rv.Type().String()

	s, err := lookupSchema(rv.Type())
	if err != nil {
		return out, &PayloadDecodeError{Type: name, Err: err}
	}
	if err := newDecodeState(format).record("", s, src, rv); err != nil {
		return out, &PayloadDecodeError{Type: name, Path: fieldPath(err), Err: err}
	}
	return out, nil
}

func (st *decodeState) record(path string, s *schema, src map[string]any, dst reflect.Value) error {
	folded := make(map[string]any, len(src))
	for k, v := range src {
		folded[foldKey(st.fold, k)] = v
	}

	for i := range s.fields {
		f := &s.fields[i]
		fv := dst.FieldByIndex(f.index)

		v, ok := lookupKey(folded, f.keys)
		if !ok {
			st.defaults(f.codec, fv)
			continue
		}
		if err := st.value(joinPath(path, f.wire), f.codec, v, fv); err != nil {
			return err
		}
	}
	return nil
}

// defaults puts dst into its "absent" state: empty lists, nested records with
// their own defaults, everything else zero.
func (st *decodeState) defaults(c *codec, dst reflect.Value) {
	switch c.kind {
	case kindList:
		dst.Set(reflect.MakeSlice(c.typ, 0, 0))
	case kindRecord:
		for i := range c.record.fields {
			f := &c.record.fields[i]
			st.defaults(f.codec, dst.FieldByIndex(f.index))
		}
	default:
		dst.Set(reflect.Zero(c.typ))
	}
}

func (st *decodeState) value(path string, c *codec, v any, dst reflect.Value) error {
	if v == nil {
		st.defaults(c, dst)
		return nil
	}

	switch c.kind {
	case kindString:
		s, err := toString(path, v)
		if err != nil {
			return err
		}
		dst.SetString(s)
	case kindBool:
		b, err := NormalizeBool(path, v)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	case kindInt:
		n, err := toInt(path, v)
		if err != nil {
			return err
		}
		if dst.OverflowInt(n) {
			return &MalformedScalar{Field: path, Value: v, Want: c.typ.String()}
		}
		dst.SetInt(n)
	case kindUint:
		n, err := toInt(path, v)
		if err != nil {
			return err
		}
		if n < 0 || dst.OverflowUint(uint64(n)) {
			return &MalformedScalar{Field: path, Value: v, Want: c.typ.String()}
		}
		dst.SetUint(uint64(n))
	case kindFloat:
		f, err := toFloat(path, v)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	case kindMillis:
		ms, err := NormalizeTimestamp(path, v)
		if err != nil {
			return err
		}
		if ms != nil {
			dst.SetInt(*ms)
		}
	case kindTime:
		ms, err := NormalizeTimestamp(path, v)
		if err != nil {
			return err
		}
		if t := MillisToTime(ms); t != nil {
			dst.Set(reflect.ValueOf(*t))
		}
	case kindPointer:
		if c.elem.kind == kindTime {
			// A zero timestamp means "never", not the epoch.
			ms, err := NormalizeTimestamp(path, v)
			if err != nil {
				return err
			}
			if t := MillisToTime(ms); t != nil {
				dst.Set(reflect.ValueOf(t))
			}
			return nil
		}
		p := reflect.New(c.elem.typ)
		if err := st.value(path, c.elem, v, p.Elem()); err != nil {
			return err
		}
		dst.Set(p)
	case kindList:
		if _, isText := v.(string); isText && st.textRecords && c.elem.kind == kindRecord {
			v = []any{v}
		}
		elems, err := NormalizeCollection(path, v, c.elem.scalar())
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(c.typ, len(elems), len(elems))
		for i, elem := range elems {
			if err := st.value(fmt.Sprintf("%s[%d]", path, i), c.elem, elem, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
	case kindRecord:
		m, ok := v.(map[string]any)
		if text, isText := v.(string); isText && st.textRecords {
			m, ok = map[string]any{"value": text}, true
		}
		if !ok {
			return &MalformedScalar{Field: path, Value: v, Want: "object"}
		}
		return st.record(path, c.record, m, dst)
	case kindRaw:
		dst.Set(reflect.ValueOf(v))
	}
	return nil
}

func toString(path string, v any) (string, error) {
	switch v.(type) {
	case string, bool, json.Number:
		// Some servers send numeric ids.
		if s, err := cast.ToStringE(v); err == nil {
			return s, nil
		}
	}
	return "", &MalformedScalar{Field: path, Value: v, Want: "string"}
}

func toInt(path string, v any) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		if n, ok := integral(t); ok {
			return n, nil
		}
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if n, ok := integral(json.Number(s)); ok {
			return n, nil
		}
	}
	return 0, &MalformedScalar{Field: path, Value: v, Want: "integer"}
}

func toFloat(path string, v any) (float64, error) {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, nil
		}
	case string:
		if f, err := cast.ToFloat64E(strings.TrimSpace(t)); err == nil {
			return f, nil
		}
	}
	return 0, &MalformedScalar{Field: path, Value: v, Want: "number"}
}

func lookupKey(folded map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := folded[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// fieldPath returns the document path named by a normalizer error.
func fieldPath(err error) string {
	var scalarErr *MalformedScalar
	if errors.As(err, &scalarErr) {
		return scalarErr.Field
	}
	var collectionErr *MalformedCollection
	if errors.As(err, &collectionErr) {
		return collectionErr.Field
	}
	return ""
}
