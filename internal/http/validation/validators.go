// Package validation checks console form input before it is sent to the
// backend. Messages are user-facing and end with a period.
package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Rule checks a raw form value and returns a message, or "" when valid.
type Rule func(v string) string

// IntRule checks a parsed number.
type IntRule func(n int64) string

// Required rejects blank values and values longer than maxLen runes.
func Required(label string, maxLen int) Rule {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return label + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", label, maxLen)
		}
		return ""
	}
}

// URL accepts absolute http and https URLs with a host.
func URL(label string, maxLen int) Rule {
	return func(v string) string {
		if msg := Required(label, maxLen)(v); msg != "" {
			return msg
		}
		u, err := url.Parse(strings.TrimSpace(v))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "Enter a valid http(s) URL."
		}
		return ""
	}
}

// OneOf accepts one of options, ignoring case.
func OneOf(label string, options ...string) Rule {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, opt := range options {
			if strings.EqualFold(v, opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(options, ", "))
	}
}

// Between accepts lo <= n <= hi.
func Between(label string, lo, hi int64) IntRule {
	return func(n int64) string {
		if n < lo || n > hi {
			return fmt.Sprintf("%s must be between %d and %d.", label, lo, hi)
		}
		return ""
	}
}

// Min accepts n >= lo.
func Min(label string, lo int64) IntRule {
	return func(n int64) string {
		if n < lo {
			return fmt.Sprintf("%s must be at least %d.", label, lo)
		}
		return ""
	}
}

// Hour accepts an hour of day, 0 through 23.
func Hour(label string) IntRule { return Between(label, 0, 23) }

// Port accepts a TCP port.
func Port(label string) IntRule { return Between(label, 1, 65535) }

// RedisDB accepts the logical databases of a stock Redis server.
func RedisDB(label string) IntRule { return Between(label, 0, 15) }

// Selected requires a positive id, as picked from a dropdown.
func Selected(msg string) IntRule {
	return func(n int64) string {
		if n <= 0 {
			return msg
		}
		return ""
	}
}

// Checker accumulates the first failure of each field.
type Checker struct {
	errors map[string]string
}

// New returns an empty Checker.
func New() *Checker {
	return &Checker{errors: make(map[string]string)}
}

func (c *Checker) record(field, msg string) {
	if msg == "" {
		return
	}
	if _, ok := c.errors[field]; !ok {
		c.errors[field] = msg
	}
}

func (c *Checker) failed(field string) bool {
	_, ok := c.errors[field]
	return ok
}

// Check runs rules against v until one fails.
func (c *Checker) Check(field, v string, rules ...Rule) *Checker {
	for _, rule := range rules {
		if c.failed(field) {
			break
		}
		c.record(field, rule(v))
	}
	return c
}

// CheckInt runs rules against n until one fails.
func (c *Checker) CheckInt(field string, n int64, rules ...IntRule) *Checker {
	for _, rule := range rules {
		if c.failed(field) {
			break
		}
		c.record(field, rule(n))
	}
	return c
}

// Expect records msg for field when ok is false.
func (c *Checker) Expect(field string, ok bool, msg string) *Checker {
	if !ok {
		c.record(field, msg)
	}
	return c
}

// Errors returns the failures keyed by field, or nil when every check passed.
func (c *Checker) Errors() map[string]string {
	if len(c.errors) == 0 {
		return nil
	}
	return c.errors
}
