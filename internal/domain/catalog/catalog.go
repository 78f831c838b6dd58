// Package catalog holds the tenant-scoped system values vendors can be
// scoped to: services, language pairs, and specializations.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendordesk-io/vendordesk/internal/shared/biztime"
)

// Service is a billable activity type (e.g. translation, proofreading).
type Service struct {
	id        uint
	adminID   uint
	title     string
	createdAt time.Time
	updatedAt time.Time
}

// NewService creates a service owned by adminID.
func NewService(adminID uint, title string) (*Service, error) {
	title = strings.TrimSpace(title)
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := biztime.NowUTC()
	return &Service{adminID: adminID, title: title, createdAt: now, updatedAt: now}, nil
}

// ReconstructService rebuilds a Service from the persistence layer.
func ReconstructService(id, adminID uint, title string, createdAt, updatedAt time.Time) *Service {
	return &Service{id: id, adminID: adminID, title: title, createdAt: createdAt, updatedAt: updatedAt}
}

func (s *Service) ID() uint             { return s.id }
func (s *Service) AdminID() uint        { return s.adminID }
func (s *Service) Title() string        { return s.title }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
func (s *Service) SetID(id uint)        { s.id = id }

// LanguagePair is a source→target language combination.
type LanguagePair struct {
	id        uint
	adminID   uint
	source    string
	target    string
	createdAt time.Time
	updatedAt time.Time
}

// NewLanguagePair creates a language pair owned by adminID. Source and
// target are ISO 639-1 style codes, stored lowercase.
func NewLanguagePair(adminID uint, source, target string) (*LanguagePair, error) {
	source = strings.ToLower(strings.TrimSpace(source))
	target = strings.ToLower(strings.TrimSpace(target))
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if source == "" || target == "" {
		return nil, fmt.Errorf("source and target languages are required")
	}
	if source == target {
		return nil, fmt.Errorf("source and target languages must differ")
	}

	now := biztime.NowUTC()
	return &LanguagePair{adminID: adminID, source: source, target: target, createdAt: now, updatedAt: now}, nil
}

// ReconstructLanguagePair rebuilds a LanguagePair from the persistence layer.
func ReconstructLanguagePair(id, adminID uint, source, target string, createdAt, updatedAt time.Time) *LanguagePair {
	return &LanguagePair{id: id, adminID: adminID, source: source, target: target, createdAt: createdAt, updatedAt: updatedAt}
}

func (p *LanguagePair) ID() uint             { return p.id }
func (p *LanguagePair) AdminID() uint        { return p.adminID }
func (p *LanguagePair) Source() string       { return p.source }
func (p *LanguagePair) Target() string       { return p.target }
func (p *LanguagePair) CreatedAt() time.Time { return p.createdAt }
func (p *LanguagePair) UpdatedAt() time.Time { return p.updatedAt }
func (p *LanguagePair) SetID(id uint)        { p.id = id }

// Specialization is a subject-matter area (e.g. legal, medical).
type Specialization struct {
	id        uint
	adminID   uint
	title     string
	createdAt time.Time
	updatedAt time.Time
}

// NewSpecialization creates a specialization owned by adminID.
func NewSpecialization(adminID uint, title string) (*Specialization, error) {
	title = strings.TrimSpace(title)
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	now := biztime.NowUTC()
	return &Specialization{adminID: adminID, title: title, createdAt: now, updatedAt: now}, nil
}

// ReconstructSpecialization rebuilds a Specialization from the persistence layer.
func ReconstructSpecialization(id, adminID uint, title string, createdAt, updatedAt time.Time) *Specialization {
	return &Specialization{id: id, adminID: adminID, title: title, createdAt: createdAt, updatedAt: updatedAt}
}

func (s *Specialization) ID() uint             { return s.id }
func (s *Specialization) AdminID() uint        { return s.adminID }
func (s *Specialization) Title() string        { return s.title }
func (s *Specialization) CreatedAt() time.Time { return s.createdAt }
func (s *Specialization) UpdatedAt() time.Time { return s.updatedAt }
func (s *Specialization) SetID(id uint)        { s.id = id }
