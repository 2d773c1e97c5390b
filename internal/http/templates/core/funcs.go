package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/target/crawl-admin/internal/domain/model"
	"github.com/target/crawl-admin/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":   deps.ContentTemplateFor,
		"timeTag":       timeTag,
		"slice":         func(nums ...int) []int { return nums },
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"contains":      strings.Contains,
		"formatNumber":  formatNumberTemplate,
		"formatBytes":   uiutil.FormatBytes,
		"formatPercent": uiutil.FormatPercent,
		"formatRatio":   uiutil.FormatRatio,
		"truncate":      truncate,
		"text":          model.Text,
		"clampPercent":  clampPercent,
		"dict":          dict,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	execute := func(name string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, name, data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during execution
		return template.HTML(buf.String()), nil
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		return execute(deps.ContentTemplateFor(page), data)
	}
	// partial executes a template chosen at runtime, e.g. a modal body.
	funcs["partial"] = execute

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// timeTag renders a <time> element for time.Time or model.Timestamp values.
func timeTag(ts any) template.HTML {
	var t0 time.Time
	switch v := ts.(type) {
	case time.Time:
		t0 = v
	case *time.Time:
		if v != nil {
			t0 = *v
		}
	case model.Timestamp:
		t0 = v.Time
	case *model.Timestamp:
		if v != nil {
			t0 = v.Time
		}
	default:
		return ""
	}
	if t0.IsZero() {
		// #nosec G203 - constant
		return template.HTML("-")
	}
	// #nosec G203 - constructed from escaped values only
	return template.HTML(fmt.Sprintf(
		"<time datetime=\"%s\">%s</time>",
		t0.UTC().Format(time.RFC3339),
		template.HTMLEscapeString(t0.Format("2006-01-02 15:04:05")),
	))
}

// truncate cuts s to n runes plus "...". n can be any integer template value.
func truncate(s string, n any) string {
	limit, ok := toIntSafe(n)
	if !ok {
		return s
	}
	return uiutil.Truncate(s, limit)
}

// clampPercent bounds a progress value to 0..100.
func clampPercent(v any) int {
	n, _ := toIntSafe(v)
	return min(max(n, 0), 100)
}

// dict builds a map from alternating keys and values so templates can pass
// several values to a partial.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// formatNumberTemplate formats any integer type with comma separators for thousands.
func formatNumberTemplate(v any) string {
	var s string
	var neg bool

	switch x := v.(type) {
	case *int:
		if x == nil {
			return ""
		}
		s, neg = formatInt64(int64(*x))
	case int:
		s, neg = formatInt64(int64(x))
	case int64:
		s, neg = formatInt64(x)
	case int32:
		s, neg = formatInt64(int64(x))
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(v)
	}

	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	return formatWithCommas(s, neg)
}

func formatInt64(x int64) (string, bool) {
	if x < 0 {
		return strconv.FormatUint(uint64(-x), 10), true
	}
	return strconv.FormatUint(uint64(x), 10), false
}

func formatWithCommas(s string, neg bool) string {
	var b strings.Builder
	b.Grow(len(s) + (len(s)-1)/3)

	prefix := len(s) % 3
	if prefix == 0 {
		prefix = 3
	}

	b.WriteString(s[:prefix])
	for i := prefix; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func toIntSafe(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}
