package models

import (
	"time"
)

const (
	TaxpayerIndividual = "individual"
	TaxpayerBusiness   = "business"
)

type Taxpayer struct {
	ID                 string    `json:"id"`
	TaxpayerID         string    `json:"taxpayerId"`
	Type               string    `json:"type"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	BusinessName       *string   `json:"businessName"`
	BusinessType       *string   `json:"businessType"`
	RegistrationNumber *string   `json:"registrationNumber"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (t Taxpayer) Validate() []FieldError {
	var details []FieldError
	details = required(details, "taxpayerId", t.TaxpayerID)
	details = required(details, "type", t.Type)
	details = oneOf(details, "type", t.Type, TaxpayerIndividual, TaxpayerBusiness)
	details = required(details, "fullName", t.FullName)
	details = required(details, "email", t.Email)
	details = required(details, "phone", t.Phone)
	details = required(details, "address", t.Address)
	return details
}

type TaxpayerUpdate struct {
	TaxpayerID         *string `json:"taxpayerId"`
	Type               *string `json:"type"`
	FullName           *string `json:"fullName"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Address            *string `json:"address"`
	BusinessName       *string `json:"businessName"`
	BusinessType       *string `json:"businessType"`
	RegistrationNumber *string `json:"registrationNumber"`
}

func (t TaxpayerUpdate) Validate() []FieldError {
	var details []FieldError
	if t.Type != nil {
		details = oneOf(details, "type", *t.Type, TaxpayerIndividual, TaxpayerBusiness)
	}
	return details
}
