// Package dto holds the request and response shapes of the catalog service.
package dto

import "time"

// CreateServiceRequest adds a service title to the admin's catalog.
type CreateServiceRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// ServiceResponse is the API view of a catalog service.
type ServiceResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateLanguagePairRequest adds a language pair to the admin's catalog.
type CreateLanguagePairRequest struct {
	Source string `json:"source" validate:"required,max=16"`
	Target string `json:"target" validate:"required,max=16"`
}

// LanguagePairResponse is the API view of a language pair.
type LanguagePairResponse struct {
	ID        uint      `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSpecializationRequest adds a specialization to the admin's catalog.
type CreateSpecializationRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// SpecializationResponse is the API view of a specialization.
type SpecializationResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
