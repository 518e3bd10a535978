package odoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"

	"github.com/shopspring/decimal"
)

// decodeOne accepts a single record or a list holding one record.
func decodeOne(raw json.RawMessage, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return model.ErrNotFound
	}
	if raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			return model.ErrNotFound
		}
		raw = items[0]
	}
	return json.Unmarshal(raw, out)
}

// domain joins simple "field=value" conditions the way the GraphQL layer expects.
func domain(conds ...string) string {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, ",")
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// replaceIDs builds the many2many "replace the set" command.
func replaceIDs(ids []int64) [][]any {
	if ids == nil {
		ids = []int64{}
	}
	return [][]any{{6, 0, ids}}
}

func textValue(t model.LocalizedText) any {
	if t.Kind() == model.TextPlain {
		return t.Plain()
	}
	out := make(map[string]string)
	for k, v := range t.Values() {
		out[string(k)] = v
	}
	return out
}

func setText(values map[string]any, key string, t model.LocalizedText) {
	if t.IsBlank() {
		return
	}
	values[key] = textValue(t)
}

// writeText always sends the key; a blank value clears the field with false.
func writeText(values map[string]any, key string, t model.LocalizedText) {
	if t.IsBlank() {
		values[key] = false
		return
	}
	values[key] = textValue(t)
}

func setString(values map[string]any, key string, s string) {
	if s = strings.TrimSpace(s); s != "" {
		values[key] = s
	}
}

func setRef(values map[string]any, key string, id int64) {
	if id != 0 {
		values[key] = id
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}

func parseDate(t dto.Text) time.Time {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return time.Time{}
	}
	if len(s) > len(model.DateLayout) {
		s = s[:len(model.DateLayout)]
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return d
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}

func requireID(op string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: id is required", op)
	}
	return nil
}
