package dto

import "lending-admin/internal/domain/customer"

type CustomerResponse struct {
	CustomerID string `json:"customerId"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	if c == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		CustomerID: c.CustomerID,
		FullName:   c.FullName,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
	}
}

func NewCustomerListResponse(list []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}
