package service

import (
	"testing"

	"bread-orders/internal/core/auth"
	"bread-orders/internal/domain"
)

func newPointService(points *fakePointRepo) *DeliveryPointService {
	return NewDeliveryPointService(points, auth.NewAdminGate(testAdminToken))
}

func TestDeliveryPoint_CreateRequiresAdminAndFields(t *testing.T) {
	t.Parallel()

	points := newFakePointRepo()
	svc := newPointService(points)

	in := DeliveryPointInput{Name: "Marché", City: "Lyon", Address: "Place Carnot"}
	if _, err := svc.Create(in, "bad"); !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := svc.Create(DeliveryPointInput{Name: "Marché"}, testAdminToken); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	id, err := svc.Create(in, testAdminToken)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	p, _ := points.FindByID(id)
	if p == nil || p.City != "Lyon" {
		t.Fatalf("point not persisted: %+v", p)
	}
}

func TestDeliveryPoint_ListIsOpen(t *testing.T) {
	t.Parallel()

	points := newFakePointRepo()
	points.points["p1"] = domain.DeliveryPoint{ID: "p1", Name: "Marché", City: "Lyon", Address: "Place Carnot"}
	svc := newPointService(points)

	got, err := svc.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 point, got %d", len(got))
	}
}

func TestDeliveryPoint_UpdateAppliesProvidedFields(t *testing.T) {
	t.Parallel()

	points := newFakePointRepo()
	points.points["p1"] = domain.DeliveryPoint{ID: "p1", Name: "Marché", City: "Lyon", Address: "Place Carnot"}
	svc := newPointService(points)

	applied, err := svc.Update("p1", DeliveryPointInput{Info: "le samedi matin"}, testAdminToken)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if applied["info"] != "le samedi matin" {
		t.Fatalf("applied: %+v", applied)
	}
	p, _ := points.FindByID("p1")
	if p.Info != "le samedi matin" || p.Name != "Marché" {
		t.Fatalf("unexpected point: %+v", p)
	}

	if _, err := svc.Update("p1", DeliveryPointInput{}, testAdminToken); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error with nothing to update, got %v", err)
	}
	if _, err := svc.Update("missing", DeliveryPointInput{Name: "X"}, testAdminToken); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Update("p1", DeliveryPointInput{Name: "X"}, ""); !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestDeliveryPoint_Delete(t *testing.T) {
	t.Parallel()

	points := newFakePointRepo()
	points.points["p1"] = domain.DeliveryPoint{ID: "p1", Name: "Marché", City: "Lyon", Address: "Place Carnot"}
	svc := newPointService(points)

	if err := svc.Delete("p1", "bad"); !domain.IsKind(err, domain.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := svc.Delete("", testAdminToken); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for missing id, got %v", err)
	}
	if err := svc.Delete("p1", testAdminToken); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if p, _ := points.FindByID("p1"); p != nil {
		t.Fatalf("point should be removed")
	}
}

func TestSeasonService_List(t *testing.T) {
	t.Parallel()

	svc := NewSeasonService(&fakeSeasonRepo{seasons: []domain.Season{{ID: "s1", Name: "Hiver 2026", EndDate: "2026-12-20"}}})
	got, err := svc.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Hiver 2026" {
		t.Fatalf("unexpected seasons: %+v", got)
	}
}
