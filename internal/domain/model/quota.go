package model

import "errors"

const (
	minQuotaYear = 1970
	maxQuotaYear = 2100
)

// Quota is a year-range sampling quota.
type Quota struct {
	ID         int64   `json:"id"`
	StartYear  int     `json:"start_year"`
	EndYear    int     `json:"end_year"`
	StockRatio float64 `json:"stock_ratio"`
	SampleNum  int     `json:"sample_num"`
}

// QuotaRequest is the create/update payload for a quota.
type QuotaRequest struct {
	StartYear  int     `json:"start_year"`
	EndYear    int     `json:"end_year"`
	StockRatio float64 `json:"stock_ratio"`
	SampleNum  int     `json:"sample_num"`
}

// Validate checks the request before it is sent to the backend.
func (r *QuotaRequest) Validate() error {
	if r.StartYear < minQuotaYear || r.StartYear > maxQuotaYear {
		return errors.New("start year is out of range")
	}
	if r.EndYear < minQuotaYear || r.EndYear > maxQuotaYear {
		return errors.New("end year is out of range")
	}
	if r.StartYear > r.EndYear {
		return errors.New("start year cannot be after end year")
	}
	if r.StockRatio <= 0 || r.StockRatio > 1 {
		return errors.New("stock ratio must be greater than 0 and at most 1")
	}
	if r.SampleNum < 1 {
		return errors.New("sample number must be at least 1")
	}
	return nil
}
