package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID accepts the number, numeric string or false forms Odoo uses for ids.
type ID int64

func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyValue(data) {
		*i = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*i = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("odoo id %q: %w", s, err)
		}
		*i = ID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("odoo id %s: %w", string(data), err)
	}
	*i = ID(n)
	return nil
}

// Ref is a many2one value: an object with id and name, or false.
type Ref struct {
	ID   ID              `json:"id"`
	Name json.RawMessage `json:"name,omitempty"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyValue(data) {
		*r = Ref{}
		return nil
	}
	if data[0] != '{' {
		var id ID
		if err := id.UnmarshalJSON(data); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// Refs is a many2many/one2many value; false decodes to empty.
type Refs []Ref

func (r *Refs) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyValue(data) {
		*r = nil
		return nil
	}
	var items []Ref
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*r = items
	return nil
}

func (r Refs) IDs() []int64 {
	if len(r) == 0 {
		return nil
	}
	res := make([]int64, 0, len(r))
	for _, ref := range r {
		if ref.ID != 0 {
			res = append(res, int64(ref.ID))
		}
	}
	return res
}

// Text is a char field that may arrive as false.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyValue(data) {
		*t = ""
		return nil
	}
	if data[0] != '"' {
		*t = Text(data)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// Money is a float field decoded without binary rounding.
type Money struct {
	decimal.Decimal
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyValue(data) {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}

// Float is a plain numeric field that may arrive as false.
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyValue(data) {
		*f = 0
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func isEmptyValue(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false"))
}
