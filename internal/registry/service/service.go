package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/attestia/docregistry/internal/registry"
	"github.com/attestia/docregistry/internal/registry/repository"
)

var (
	ErrNotFound = errors.New("not found")
)

// Repository is the ordered-map contract the service stores documents in.
// Both the Mongo-backed and in-memory repos satisfy it.
type Repository interface {
	Insert(ctx context.Context, doc *registry.Document) error
	Get(ctx context.Context, id string) (*registry.Document, error)
	Replace(ctx context.Context, doc *registry.Document) error
	Delete(ctx context.Context, id string) (*registry.Document, error)
	List(ctx context.Context) ([]*registry.Document, error)
}

// CreateRequest carries the caller-supplied fields for a new document.
// A non-nil Status overrides the "pending" default; generated fields
// (id, createdAt, updatedAt) are never caller-settable.
type CreateRequest struct {
	Name   string  `json:"name"`
	Hash   string  `json:"hash"`
	Owner  string  `json:"owner"`
	Status *string `json:"status"`
}

// UpdateRequest is a partial overlay: nil fields keep the stored values,
// non-nil fields win field-by-field.
type UpdateRequest struct {
	Name   *string `json:"name"`
	Hash   *string `json:"hash"`
	Owner  *string `json:"owner"`
	Status *string `json:"status"`
}

// Service defines the registry operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*registry.Document, error)
	List(ctx context.Context) ([]*registry.Document, error)
	Get(ctx context.Context, id string) (*registry.Document, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*registry.Document, error)
	Delete(ctx context.Context, id string) (*registry.Document, error)
}

// New returns a Service storing documents in the given repository.
func New(repo Repository) Service {
	return &registryService{
		repo:  repo,
		clock: registry.SystemClock(),
		newID: uuid.NewString,
	}
}

type registryService struct {
	repo  Repository
	clock registry.Clock
	newID func() string
}

// Create builds the record as generated defaults overlaid with the caller's
// fields, so a caller-supplied status beats "pending".
func (s *registryService) Create(ctx context.Context, req CreateRequest) (*registry.Document, error) {
	doc := &registry.Document{
		ID:        s.newID(),
		Name:      req.Name,
		Hash:      req.Hash,
		Owner:     req.Owner,
		Status:    registry.StatusPending,
		CreatedAt: s.clock.NowMillis(),
	}
	if req.Status != nil {
		doc.Status = *req.Status
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *registryService) List(ctx context.Context) ([]*registry.Document, error) {
	return s.repo.List(ctx)
}

func (s *registryService) Get(ctx context.Context, id string) (*registry.Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *registryService) Update(ctx context.Context, id string, req UpdateRequest) (*registry.Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Hash != nil {
		d.Hash = *req.Hash
	}
	if req.Owner != nil {
		d.Owner = *req.Owner
	}
	if req.Status != nil {
		d.Status = *req.Status
	}
	now := s.clock.NowMillis()
	d.UpdatedAt = &now
	if err := s.repo.Replace(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *registryService) Delete(ctx context.Context, id string) (*registry.Document, error) {
	d, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}
