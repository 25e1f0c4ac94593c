package models

import (
	"time"
)

const (
	RegistrationStatusPending  = "pending"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

type BusinessRegistration struct {
	ID                 string     `json:"id"`
	BusinessName       string     `json:"businessName"`
	BusinessType       string     `json:"businessType"`
	RegistrationNumber string     `json:"registrationNumber"`
	TaxID              *string    `json:"taxId"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	ContactPerson      string     `json:"contactPerson"`
	ContactEmail       string     `json:"contactEmail"`
	ContactPhone       string     `json:"contactPhone"`
	Status             string     `json:"status"`
	RejectionReason    *string    `json:"rejectionReason"`
	SubmittedAt        time.Time  `json:"submittedAt"`
	ReviewedAt         *time.Time `json:"reviewedAt"`
	ReviewedBy         *string    `json:"reviewedBy"`
}

func (b BusinessRegistration) Validate() []FieldError {
	var details []FieldError
	details = required(details, "businessName", b.BusinessName)
	details = required(details, "businessType", b.BusinessType)
	details = oneOf(details, "businessType", b.BusinessType,
		"sole_proprietorship", "partnership", "limited_liability", "corporation")
	details = required(details, "registrationNumber", b.RegistrationNumber)
	details = required(details, "address", b.Address)
	details = required(details, "city", b.City)
	details = required(details, "state", b.State)
	details = required(details, "contactPerson", b.ContactPerson)
	details = required(details, "contactEmail", b.ContactEmail)
	details = required(details, "contactPhone", b.ContactPhone)
	return details
}

type UpdateRegistrationStatusRequest struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason"`
	ReviewedBy      *string `json:"reviewedBy"`
}

func (r UpdateRegistrationStatusRequest) Validate() []FieldError {
	var details []FieldError
	details = required(details, "status", r.Status)
	details = oneOf(details, "status", r.Status,
		RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected)
	return details
}
