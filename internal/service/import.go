package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/target/crawl-admin/internal/domain/model"
	apperrors "github.com/target/crawl-admin/internal/errors"
)

// MaxImportRecords bounds a single import.
const MaxImportRecords = 10000

// ImportRequest is a pasted or uploaded JSON document plus an optional
// JMESPath expression selecting the record array inside it.
type ImportRequest struct {
	Document   []byte
	Expression string
}

// wrapperKeys are tried, in order, when the document is an object and no
// expression is given.
var wrapperKeys = []string{"data", "records", "items", "results"} //nolint:gochecknoglobals // read-only

// SelectRecords extracts the record array from an import document.
func SelectRecords(req ImportRequest) ([]any, error) {
	doc := bytes.TrimSpace(req.Document)
	if len(doc) == 0 {
		return nil, apperrors.ValidationField("document", "Paste or upload a JSON document.")
	}
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, apperrors.ValidationField("document", "Document is not valid JSON: "+err.Error())
	}

	selected := data
	if expr := strings.TrimSpace(req.Expression); expr != "" {
		if _, err := jmespath.Compile(expr); err != nil {
			return nil, apperrors.ValidationField("expression", "Invalid JMESPath expression: "+err.Error())
		}
		out, err := jmespath.Search(expr, data)
		if err != nil {
			return nil, apperrors.ValidationField("expression", "Expression failed: "+err.Error())
		}
		selected = out
	} else if obj, ok := data.(map[string]any); ok {
		for _, k := range wrapperKeys {
			if arr, ok := obj[k].([]any); ok {
				selected = arr
				break
			}
		}
	}

	records, ok := selected.([]any)
	if !ok {
		return nil, apperrors.ValidationField("expression", "The selection must be a JSON array of records.")
	}
	if len(records) == 0 {
		return nil, apperrors.ValidationField("document", "No records to import.")
	}
	if len(records) > MaxImportRecords {
		return nil, apperrors.Validationf("At most %d records can be imported at once.", MaxImportRecords)
	}
	for i, r := range records {
		if _, ok := r.(map[string]any); !ok {
			return nil, apperrors.ValidationField("document", fmt.Sprintf("Record %d is not a JSON object.", i+1))
		}
	}
	return records, nil
}

// ImportRaw selects the records from the document and posts them to the
// raw-data importer.
func (s *RecordService) ImportRaw(ctx context.Context, req ImportRequest) (*model.ImportResult, error) {
	records, err := SelectRecords(req)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode import payload: %w", err)
	}
	res, err := s.api.ImportRawRecords(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("import raw data: %w", err)
	}
	if res == nil {
		res = &model.ImportResult{}
	}
	if res.Message == "" {
		res.Message = fmt.Sprintf("Imported %d records.", len(records))
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "raw data imported", "records", len(records), "imported", res.Imported)
	}
	return res, nil
}
