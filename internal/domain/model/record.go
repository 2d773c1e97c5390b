package model

import (
	"net/url"
	"strconv"
)

// RecordKind identifies which data table a record belongs to.
type RecordKind string

const (
	RecordKindRaw    RecordKind = "raw"
	RecordKindSample RecordKind = "sample"
)

// Valid reports whether the kind is supported.
func (k RecordKind) Valid() bool {
	return k == RecordKindRaw || k == RecordKindSample
}

// Label is the display name of the data set.
func (k RecordKind) Label() string {
	switch k {
	case RecordKindRaw:
		return "Raw data"
	case RecordKindSample:
		return "Sample data"
	default:
		return string(k)
	}
}

// Record is a collected answer, either raw or sampled. Both tables share the
// same shape on the wire.
type Record struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	PublishTime *string `json:"publish_time,omitempty"`
	AnswerURL   string  `json:"answer_url"`
	Author      *string `json:"author,omitempty"`
	AuthorURL   *string `json:"author_url,omitempty"`
	AuthorField *string `json:"author_field,omitempty"`
	AuthorCert  *string `json:"author_cert,omitempty"`
	AuthorFans  *int    `json:"author_fans,omitempty"`
	Year        int     `json:"year"`
	TaskID      int64   `json:"task_id"`
}

// Text dereferences an optional string field, returning "" when unset.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RecordFilter narrows a record listing.
type RecordFilter struct {
	Year   *int
	TaskID *int64
}

// IsZero reports whether no filter is set.
func (f RecordFilter) IsZero() bool {
	return f.Year == nil && f.TaskID == nil
}

// Apply writes the filter into backend query parameters.
func (f RecordFilter) Apply(q url.Values) {
	if f.Year != nil {
		q.Set("year", strconv.Itoa(*f.Year))
	}
	if f.TaskID != nil {
		q.Set("task_id", strconv.FormatInt(*f.TaskID, 10))
	}
}

// ListOptions carries skip/limit paging for backend list endpoints.
type ListOptions struct {
	Skip  int
	Limit int
}

// Apply writes the paging parameters into backend query parameters.
func (o ListOptions) Apply(q url.Values) {
	if o.Skip > 0 {
		q.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
}

// RecordListOptions combines paging and filtering for record lists.
type RecordListOptions struct {
	ListOptions
	RecordFilter
}

// ImportResult is the backend response to a JSON import.
type ImportResult struct {
	Message  string `json:"message"`
	Imported int    `json:"imported,omitempty"`
	Skipped  int    `json:"skipped,omitempty"`
}
