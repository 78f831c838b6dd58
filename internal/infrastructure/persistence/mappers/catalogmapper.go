package mappers

import (
	"github.com/vendordesk-io/vendordesk/internal/domain/catalog"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
)

// CatalogMapper converts the three system-value models to entities and back.
type CatalogMapper interface {
	ServiceToEntity(model *models.ServiceModel) *catalog.Service
	ServiceToModel(entity *catalog.Service) *models.ServiceModel
	ServicesToEntities(modelList []*models.ServiceModel) []*catalog.Service

	LanguagePairToEntity(model *models.LanguagePairModel) *catalog.LanguagePair
	LanguagePairToModel(entity *catalog.LanguagePair) *models.LanguagePairModel
	LanguagePairsToEntities(modelList []*models.LanguagePairModel) []*catalog.LanguagePair

	SpecializationToEntity(model *models.SpecializationModel) *catalog.Specialization
	SpecializationToModel(entity *catalog.Specialization) *models.SpecializationModel
	SpecializationsToEntities(modelList []*models.SpecializationModel) []*catalog.Specialization
}

type catalogMapper struct{}

func NewCatalogMapper() CatalogMapper {
	return &catalogMapper{}
}

func (m *catalogMapper) ServiceToEntity(model *models.ServiceModel) *catalog.Service {
	if model == nil {
		return nil
	}
	return catalog.ReconstructService(model.ID, model.AdminID, model.Title, model.CreatedAt, model.UpdatedAt)
}

func (m *catalogMapper) ServiceToModel(entity *catalog.Service) *models.ServiceModel {
	if entity == nil {
		return nil
	}
	return &models.ServiceModel{
		ID:        entity.ID(),
		AdminID:   entity.AdminID(),
		Title:     entity.Title(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *catalogMapper) ServicesToEntities(modelList []*models.ServiceModel) []*catalog.Service {
	entities := make([]*catalog.Service, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ServiceToEntity(model))
	}
	return entities
}

func (m *catalogMapper) LanguagePairToEntity(model *models.LanguagePairModel) *catalog.LanguagePair {
	if model == nil {
		return nil
	}
	return catalog.ReconstructLanguagePair(model.ID, model.AdminID, model.Source, model.Target, model.CreatedAt, model.UpdatedAt)
}

func (m *catalogMapper) LanguagePairToModel(entity *catalog.LanguagePair) *models.LanguagePairModel {
	if entity == nil {
		return nil
	}
	return &models.LanguagePairModel{
		ID:        entity.ID(),
		AdminID:   entity.AdminID(),
		Source:    entity.Source(),
		Target:    entity.Target(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *catalogMapper) LanguagePairsToEntities(modelList []*models.LanguagePairModel) []*catalog.LanguagePair {
	entities := make([]*catalog.LanguagePair, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.LanguagePairToEntity(model))
	}
	return entities
}

func (m *catalogMapper) SpecializationToEntity(model *models.SpecializationModel) *catalog.Specialization {
	if model == nil {
		return nil
	}
	return catalog.ReconstructSpecialization(model.ID, model.AdminID, model.Title, model.CreatedAt, model.UpdatedAt)
}

func (m *catalogMapper) SpecializationToModel(entity *catalog.Specialization) *models.SpecializationModel {
	if entity == nil {
		return nil
	}
	return &models.SpecializationModel{
		ID:        entity.ID(),
		AdminID:   entity.AdminID(),
		Title:     entity.Title(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *catalogMapper) SpecializationsToEntities(modelList []*models.SpecializationModel) []*catalog.Specialization {
	entities := make([]*catalog.Specialization, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.SpecializationToEntity(model))
	}
	return entities
}
