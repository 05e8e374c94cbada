// Copyright 2026 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.
package store

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	ParamPage   = "page"
	ParamSort   = "sort"
	ParamLimit  = "limit"
	ParamFields = "fields"

	DefaultPage  = 1
	DefaultLimit = 10

	FieldCreatedAt = "createdAt"
	FieldVersion   = "__v"
)

var reservedParams = []string{ParamPage, ParamSort, ParamLimit, ParamFields}

// storage level equivalents of the bracketed query operators
var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
	"ne":  "$ne",
	"in":  "$in",
	"nin": "$nin",
}

var operatorKeyRegex = regexp.MustCompile(`^(.+)\[(gte|gt|lte|lt|ne|in|nin)\]$`)

// Filter maps a field name either to a literal (equality) or to an
// operator map such as {"$gte": 3, "$lte": 5}.
type Filter map[string]interface{}

type SortField struct {
	Field      string
	Descending bool
}

type SortSpec []SortField

// Projection either includes only the listed fields or, when Include is
// empty, excludes the ones in Exclude.
type Projection struct {
	Include []string
	Exclude []string
}

type PageWindow struct {
	Page  int
	Limit int
	Skip  int
}

type Pagination struct {
	Total       int
	TotalPages  int
	CurrentPage int
	Limit       int
	NextPage    *int
	PrevPage    *int
	FirstPage   int
	LastPage    int
}

// ListQuery is everything a listing needs to hand to the data store. The
// total count of a listing is always computed from Filter alone.
type ListQuery struct {
	Filter     Filter
	Sort       SortSpec
	Projection Projection
	Page       PageWindow
}

// BuildQuery translates request query parameters into a ListQuery.
//
// Control parameters (page, sort, limit, fields) never end up in the
// filter. Keys of the form `field[op]` with a known operator are merged into
// a single operator map per field; keys with any other bracket suffix are
// kept verbatim as equality constraints. When a key is repeated, the last
// value wins.
func BuildQuery(params url.Values) ListQuery {
	return ListQuery{
		Filter:     parseFilter(params),
		Sort:       parseSort(params.Get(ParamSort)),
		Projection: parseProjection(params.Get(ParamFields)),
		Page:       parsePageWindow(params.Get(ParamPage), params.Get(ParamLimit)),
	}
}

func isReserved(key string) bool {
	for _, r := range reservedParams {
		if key == r {
			return true
		}
	}
	return false
}

func parseFilter(params url.Values) Filter {
	filter := Filter{}

	// sorted for a deterministic result when a field appears both as a
	// literal and with operators
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if isReserved(key) {
			continue
		}
		values := params[key]
		if len(values) == 0 {
			continue
		}

		m := operatorKeyRegex.FindStringSubmatch(key)
		if m == nil {
			if _, isOps := filter[key].(map[string]interface{}); isOps {
				continue
			}
			filter[key] = coerce(key, values[len(values)-1])
			continue
		}

		field, op := m[1], operators[m[2]]
		ops, ok := filter[field].(map[string]interface{})
		if !ok {
			ops = map[string]interface{}{}
			filter[field] = ops
		}
		for _, v := range values {
			if op == "$in" || op == "$nin" {
				ops[op] = coerceList(field, v)
			} else {
				ops[op] = coerce(field, v)
			}
		}
	}
	return filter
}

func isNumericField(field string) bool {
	return strings.Contains(field, "duration") ||
		strings.Contains(field, "priority")
}

// coerce converts the operand of numeric fields; unparsable numbers become
// NaN and are left for the data store to reject or match nothing.
func coerce(field, value string) interface{} {
	if !isNumericField(field) {
		return value
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func coerceList(field, value string) []interface{} {
	parts := strings.Split(value, ",")
	list := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		list = append(list, coerce(field, p))
	}
	return list
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func DefaultSort() SortSpec {
	return SortSpec{{Field: FieldCreatedAt, Descending: true}}
}

func parseSort(s string) SortSpec {
	var spec SortSpec
	for _, f := range splitList(s) {
		desc := strings.HasPrefix(f, "-")
		f = strings.TrimPrefix(f, "-")
		if f == "" {
			continue
		}
		spec = append(spec, SortField{Field: f, Descending: desc})
	}
	if len(spec) == 0 {
		return DefaultSort()
	}
	return spec
}

func DefaultProjection() Projection {
	return Projection{Exclude: []string{FieldVersion}}
}

func parseProjection(s string) Projection {
	fields := splitList(s)
	if len(fields) == 0 {
		return DefaultProjection()
	}
	return Projection{Include: fields}
}

func parsePositive(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func parsePageWindow(page, limit string) PageWindow {
	return NewPageWindow(
		parsePositive(page, DefaultPage),
		parsePositive(limit, DefaultLimit),
	)
}

func NewPageWindow(page, limit int) PageWindow {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	// keep (page-1)*limit representable
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return PageWindow{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// Paginate derives the navigation of the window over total matching
// records.
func (w PageWindow) Paginate(total int) Pagination {
	totalPages := 0
	if w.Limit > 0 && total > 0 {
		totalPages = (total-1)/w.Limit + 1
	}
	p := Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: w.Page,
		Limit:       w.Limit,
		FirstPage:   1,
		LastPage:    totalPages,
	}
	if w.Page < totalPages {
		next := w.Page + 1
		p.NextPage = &next
	}
	if w.Page > 1 {
		prev := w.Page - 1
		p.PrevPage = &prev
	}
	return p
}
