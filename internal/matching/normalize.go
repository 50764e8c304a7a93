package matching

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var listSeparators = regexp.MustCompile(`[,;]`)

// Normalize coerces the flexible inputs accepted by the scorer into a skill
// set. Accepted shapes: nil, a comma/semicolon-separated string, a []string,
// another *SkillSet, or any slice whose items are strings, Stringers, or
// structs/maps carrying a name-like attribute. A wholly non-iterable input
// yields an empty set.
func Normalize(input any) *SkillSet {
	set := NewSkillSet()

	switch v := input.(type) {
	case nil:
	case *SkillSet:
		if v != nil {
			for _, item := range v.Items() {
				set.Add(item)
			}
		}
	case string:
		for _, part := range listSeparators.Split(v, -1) {
			set.Add(part)
		}
	case []string:
		for _, item := range v {
			set.Add(item)
		}
	default:
		rv := reflect.ValueOf(input)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return set
		}
		for i := 0; i < rv.Len(); i++ {
			set.Add(itemName(rv.Index(i).Interface()))
		}
	}

	return set
}

// itemName extracts a display name from a single item: strings and Stringers
// directly, structs and maps through their name attribute, everything else
// through its string representation.
func itemName(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	var named struct {
		Name string `mapstructure:"name"`
	}
	if err := mapstructure.WeakDecode(item, &named); err == nil && strings.TrimSpace(named.Name) != "" {
		return named.Name
	}

	return fmt.Sprintf("%v", item)
}
