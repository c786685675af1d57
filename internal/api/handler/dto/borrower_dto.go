package dto

import (
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/listing"
	"lending-admin/internal/snapshot"
	"time"
)

type BorrowerRequest struct {
	CustomerID string `json:"customerId"`
	FullName   string `json:"fullName"`
	ContactNo  string `json:"contactNo"`
	Address    string `json:"address"`
	Email      string `json:"email,omitempty"`
}

func (r BorrowerRequest) Fields() borrower.Fields {
	return borrower.Fields{
		CustomerID: r.CustomerID,
		FullName:   r.FullName,
		ContactNo:  r.ContactNo,
		Address:    r.Address,
		Email:      r.Email,
	}
}

type BorrowerResponse struct {
	BorrowerID       int64  `json:"borrowerId"`
	CustomerID       string `json:"customerId"`
	RefNo            string `json:"refNo"`
	FullName         string `json:"fullName"`
	ContactNo        string `json:"contactNo"`
	Address          string `json:"address"`
	Email            string `json:"email"`
	IsRepeatCustomer bool   `json:"isRepeatCustomer"`
	LoanCount        int    `json:"loanCount"`
}

func NewBorrowerResponse(b *borrower.Borrower) BorrowerResponse {
	if b == nil {
		return BorrowerResponse{}
	}
	return BorrowerResponse{
		BorrowerID:       b.BorrowerID,
		CustomerID:       b.CustomerID,
		RefNo:            b.RefNo,
		FullName:         b.FullName,
		ContactNo:        b.ContactNo,
		Address:          b.Address,
		Email:            b.Email,
		IsRepeatCustomer: b.IsRepeatCustomer,
		LoanCount:        b.LoanCount,
	}
}

type RowResponse struct {
	Borrower BorrowerResponse `json:"borrower"`
	Style    listing.Scheme   `json:"style"`
	Label    string           `json:"label,omitempty"`
}

type TabCounts struct {
	All    int `json:"all"`
	Repeat int `json:"repeat"`
}

type BorrowerViewResponse struct {
	Tab        string        `json:"tab"`
	Search     string        `json:"search"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	Counts     TabCounts     `json:"counts"`
	Rows       []RowResponse `json:"rows"`
}

func NewBorrowerViewResponse(v listing.View) BorrowerViewResponse {
	rows := make([]RowResponse, len(v.Rows))
	for i, row := range v.Rows {
		rows[i] = RowResponse{
			Borrower: NewBorrowerResponse(row.Borrower),
			Style:    row.Scheme,
			Label:    row.Label,
		}
	}
	return BorrowerViewResponse{
		Tab:        string(v.State.Tab),
		Search:     v.State.Search,
		Page:       v.State.Page,
		PageSize:   v.State.PageSize,
		Total:      v.Total,
		TotalPages: v.TotalPages,
		Counts:     TabCounts{All: v.AllCount, Repeat: v.RepeatCount},
		Rows:       rows,
	}
}

type SnapshotSummaryResponse struct {
	Version   uint64    `json:"version"`
	Borrowers int       `json:"borrowers"`
	Customers int       `json:"customers"`
	LoadedAt  time.Time `json:"loadedAt"`
	Error     string    `json:"error,omitempty"`
}

func NewSnapshotSummaryResponse(s snapshot.Snapshot) SnapshotSummaryResponse {
	resp := SnapshotSummaryResponse{
		Version:   s.Version,
		Borrowers: len(s.Borrowers),
		Customers: len(s.Customers),
		LoadedAt:  s.LoadedAt,
	}
	if s.Err != nil {
		resp.Error = s.Err.Error()
	}
	return resp
}
