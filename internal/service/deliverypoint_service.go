package service

import (
	"strings"
	"time"

	"bread-orders/internal/core/auth"
	"bread-orders/internal/domain"
	"bread-orders/pkg/utils"
)

// DeliveryPointService is plain CRUD over pickup locations; reads are
// open, writes go through the admin gate.
type DeliveryPointService struct {
	points domain.DeliveryPointRepository
	gate   *auth.AdminGate
	now    func() time.Time
}

func NewDeliveryPointService(points domain.DeliveryPointRepository, gate *auth.AdminGate) *DeliveryPointService {
	return &DeliveryPointService{points: points, gate: gate, now: time.Now}
}

type DeliveryPointInput struct {
	Name    string
	City    string
	Address string
	Info    string
}

func (s *DeliveryPointService) Create(in DeliveryPointInput, adminToken string) (string, error) {
	if !s.gate.Allow(adminToken) {
		return "", domain.Unauthorized("Admin token requis")
	}
	if in.Name == "" || in.City == "" || in.Address == "" {
		return "", domain.Validation("Nom, ville et adresse requis")
	}
	p := &domain.DeliveryPoint{
		ID:        utils.NewID(),
		Name:      in.Name,
		City:      in.City,
		Address:   in.Address,
		Info:      in.Info,
		CreatedAt: s.now(),
	}
	if err := s.points.Create(p); err != nil {
		return "", domain.Internal("création du point de livraison impossible", err)
	}
	return p.ID, nil
}

func (s *DeliveryPointService) List() ([]domain.DeliveryPoint, error) {
	points, err := s.points.List()
	if err != nil {
		return nil, domain.Internal("lecture des points de livraison impossible", err)
	}
	return points, nil
}

// Update applies only the provided fields.
func (s *DeliveryPointService) Update(id string, in DeliveryPointInput, adminToken string) (map[string]string, error) {
	if !s.gate.Allow(adminToken) {
		return nil, domain.Unauthorized("Admin token requis")
	}
	if id == "" {
		return nil, domain.Validation("ID requis")
	}
	p, err := s.points.FindByID(id)
	if err != nil {
		return nil, domain.Internal("lecture du point de livraison impossible", err)
	}
	if p == nil {
		return nil, domain.NotFound("Point de livraison introuvable")
	}
	applied := map[string]string{}
	if strings.TrimSpace(in.Name) != "" {
		p.Name = in.Name
		applied["name"] = in.Name
	}
	if strings.TrimSpace(in.City) != "" {
		p.City = in.City
		applied["city"] = in.City
	}
	if strings.TrimSpace(in.Address) != "" {
		p.Address = in.Address
		applied["address"] = in.Address
	}
	if strings.TrimSpace(in.Info) != "" {
		p.Info = in.Info
		applied["info"] = in.Info
	}
	if len(applied) == 0 {
		return nil, domain.Validation("Aucune donnée à mettre à jour")
	}
	if err := s.points.Update(p); err != nil {
		return nil, domain.Internal("mise à jour du point de livraison impossible", err)
	}
	return applied, nil
}

func (s *DeliveryPointService) Delete(id, adminToken string) error {
	if !s.gate.Allow(adminToken) {
		return domain.Unauthorized("Admin token requis")
	}
	if id == "" {
		return domain.Validation("ID requis")
	}
	if err := s.points.Delete(id); err != nil {
		return domain.Internal("suppression du point de livraison impossible", err)
	}
	return nil
}

// SeasonService exposes the read-only season list used by the ordering
// UI.
type SeasonService struct {
	seasons domain.SeasonRepository
}

func NewSeasonService(seasons domain.SeasonRepository) *SeasonService {
	return &SeasonService{seasons: seasons}
}

func (s *SeasonService) List() ([]domain.Season, error) {
	seasons, err := s.seasons.List()
	if err != nil {
		return nil, domain.Internal("lecture des saisons impossible", err)
	}
	return seasons, nil
}
