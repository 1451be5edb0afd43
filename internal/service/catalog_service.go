package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"serviceatlas/internal/domains"
)

type CatalogService struct {
	provider CatalogProvider
}

type CatalogProvider interface {
	SearchServices(ctx context.Context, term string) ([]domains.ServiceRow, error)
	GetServiceByID(ctx context.Context, serviceID int64) (domains.ServiceRow, error)
	CreateService(ctx context.Context, name, title, description string, details []byte) (int64, error)
	UpdateService(ctx context.Context, serviceID int64, name *string, content domains.ServiceContentUpdate) error
	DeleteService(ctx context.Context, serviceID int64) error
}

func NewCatalogService(provider CatalogProvider) *CatalogService {
	return &CatalogService{
		provider: provider,
	}
}

// Search lists the catalog, optionally narrowed by a free-text term, with
// each row's details expanded through the codec. A row whose stored document
// is unreadable comes back with nil details instead of failing the listing.
func (s *CatalogService) Search(ctx context.Context, term string) ([]domains.ServiceRecord, error) {
	rows, err := s.provider.SearchServices(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}

	records := make([]domains.ServiceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domains.ServiceRecord{
			ID:          row.ID,
			Name:        row.Name,
			Title:       row.Title,
			Description: row.Description,
			ImagePath:   row.ImagePath,
			Details:     domains.DecodeDetails(row.Details),
		})
	}
	return records, nil
}

// ServiceFaqs projects one service's FAQ list, filtered case-insensitively
// against question and answer text. The underlying document is not mutated.
func (s *CatalogService) ServiceFaqs(ctx context.Context, serviceID int64, term string) ([]domains.Faq, error) {
	row, err := s.provider.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return domains.FilterFaqs(domains.DecodeDetails(row.Details), term), nil
}

func (s *CatalogService) Create(ctx context.Context, payload domains.ServiceCreate) (int64, error) {
	details, err := normalizeDetails(payload.Details)
	if err != nil {
		return 0, err
	}

	serviceID, err := s.provider.CreateService(ctx, payload.Name, payload.Title, payload.Description, details)
	if err != nil {
		return 0, fmt.Errorf("create service: %w", err)
	}
	return serviceID, nil
}

func (s *CatalogService) Update(ctx context.Context, serviceID int64, payload domains.ServiceUpdate) error {
	content := domains.ServiceContentUpdate{
		Title:       payload.Title,
		Description: payload.Description,
	}

	// Absent details keep the stored value; supplied details are re-encoded
	// so every edit settles the row into the canonical form.
	if len(bytes.TrimSpace(payload.Details)) > 0 && !bytes.Equal(bytes.TrimSpace(payload.Details), []byte("null")) {
		details, err := normalizeDetails(payload.Details)
		if err != nil {
			return err
		}
		content.Details = details
	}

	if err := s.provider.UpdateService(ctx, serviceID, payload.Name, content); err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, serviceID int64) error {
	if err := s.provider.DeleteService(ctx, serviceID); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// normalizeDetails converts caller-supplied details to the canonical stored
// encoding. Absent details become the empty document. A value that is present
// but does not decode to a document with cards is the caller's error, unlike
// the tolerant read path.
func normalizeDetails(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domains.EncodeDetails(nil)
	}

	doc := domains.DecodeDetails(trimmed)
	if doc == nil {
		return nil, ErrDetailsInvalid
	}
	return domains.EncodeDetails(doc)
}
