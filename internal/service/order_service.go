package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bread-orders/internal/core/auth"
	"bread-orders/internal/domain"
	"bread-orders/internal/mailer"
	"bread-orders/pkg/utils"
)

// cancelCutoff is the hard lower bound on the time remaining before an
// order's end date for self-service cancellation. Exactly 48h remaining
// is still allowed.
const cancelCutoff = 48 * time.Hour

// endDateLayouts are tried in order when parsing an order's end date.
var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Notify carries the addresses used for order notification mails.
type Notify struct {
	SiteName   string
	AdminEmail string
}

type OrderService struct {
	orders  domain.OrderRepository
	seasons domain.SeasonRepository
	gate    *auth.AdminGate
	mail    mailer.Mailer
	log     *zap.Logger
	notify  Notify
	now     func() time.Time
}

func NewOrderService(orders domain.OrderRepository, seasons domain.SeasonRepository, gate *auth.AdminGate, mail mailer.Mailer, log *zap.Logger, notify Notify) *OrderService {
	if notify.SiteName == "" {
		notify.SiteName = "Commande de Pain"
	}
	return &OrderService{
		orders:  orders,
		seasons: seasons,
		gate:    gate,
		mail:    mail,
		log:     log,
		notify:  notify,
		now:     time.Now,
	}
}

type CreateOrderInput struct {
	Name          string
	Email         string
	Phone         string
	Date          string
	SeasonID      string
	SeasonName    string
	SeasonEndDate string
	Items         []domain.OrderItem
	UserID        string
}

// Create validates and persists a new order and returns its id. At
// least one season must exist in the store.
func (s *OrderService) Create(in CreateOrderInput) (string, error) {
	if in.Name == "" || in.Email == "" || (in.Date == "" && in.SeasonID == "") || len(in.Items) == 0 {
		return "", domain.Validation("Données de commande incomplètes.")
	}
	any, err := s.seasons.Any()
	if err != nil {
		return "", domain.Internal("vérification des saisons impossible", err)
	}
	if !any {
		return "", domain.Unavailable("Aucune saison créée.")
	}
	o := &domain.Order{
		ID:            utils.NewID(),
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:         strings.TrimSpace(in.Phone),
		Date:          strings.TrimSpace(in.Date),
		SeasonID:      in.SeasonID,
		SeasonName:    in.SeasonName,
		SeasonEndDate: in.SeasonEndDate,
		Items:         in.Items,
		UserID:        in.UserID,
		CreatedAt:     s.now(),
	}
	if err := s.orders.Create(o); err != nil {
		return "", domain.Internal("enregistrement de la commande impossible", err)
	}
	return o.ID, nil
}

// List returns a user's orders when userID is given (any caller), or
// every order when it is not (admin token required).
func (s *OrderService) List(userID, adminToken string) ([]domain.Order, error) {
	if userID != "" {
		orders, err := s.orders.ListByUser(userID)
		if err != nil {
			return nil, domain.Internal("lecture des commandes impossible", err)
		}
		return orders, nil
	}
	if !s.gate.Allow(adminToken) {
		return nil, domain.Unauthorized("Admin token requis")
	}
	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, domain.Internal("lecture des commandes impossible", err)
	}
	return orders, nil
}

// CancelByOwner deletes an order on behalf of its owner. The supplied
// email must match the stored one (case-insensitive) and at least 48
// hours must remain before the order's end date. On success the admin
// and the owner are notified best-effort.
func (s *OrderService) CancelByOwner(orderID, email string) error {
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return domain.Internal("lecture de la commande impossible", err)
	}
	if o == nil {
		return domain.NotFound("Commande introuvable")
	}
	if o.Email != strings.ToLower(strings.TrimSpace(email)) {
		return domain.Forbidden("Vous ne pouvez annuler que vos propres commandes")
	}
	if err := s.cancellable(o); err != nil {
		return err
	}
	if err := s.orders.Delete(o.ID); err != nil {
		return domain.Internal("suppression de la commande impossible", err)
	}

	summary := Summary(o)
	if s.notify.AdminEmail != "" {
		subject := fmt.Sprintf("[%s] Commande supprimée par l'utilisateur (%s)", s.notify.SiteName, o.Name)
		if err := s.mail.Send(s.notify.AdminEmail, subject, summary); err != nil {
			s.log.Warn("cancellation mail to admin failed", zap.String("orderId", o.ID), zap.Error(err))
		}
	}
	subject := fmt.Sprintf("[%s] Confirmation d'annulation de votre commande", s.notify.SiteName)
	body := fmt.Sprintf("Bonjour %s,\n\nVotre commande a bien été annulée.\n\n%s\n\nCordialement.", o.Name, summary)
	if err := s.mail.Send(o.Email, subject, body); err != nil {
		s.log.Warn("cancellation mail to owner failed", zap.String("orderId", o.ID), zap.Error(err))
	}
	return nil
}

// cancellable enforces the 48-hour cutoff against the order's end date.
func (s *OrderService) cancellable(o *domain.Order) error {
	endStr := o.EndDate()
	if endStr == "" {
		return domain.Validation("Date de fin de saison inconnue")
	}
	end, err := parseEndDate(endStr)
	if err != nil {
		return domain.Validation("Date de fin de saison invalide")
	}
	if end.Sub(s.now()) < cancelCutoff {
		return domain.Policy("Annulation impossible: moins de 48h avant la fin de la saison")
	}
	return nil
}

// AdminUpdate applies a partial, whitelisted update to an order.
// userId can never be rewritten. Returns the fields actually applied.
func (s *OrderService) AdminUpdate(orderID string, updates map[string]any, adminToken string) (map[string]any, error) {
	if !s.gate.Allow(adminToken) {
		return nil, domain.Unauthorized("Admin token requis")
	}
	if orderID == "" || len(updates) == 0 {
		return nil, domain.Validation("orderId et updates requis")
	}
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, domain.Internal("lecture de la commande impossible", err)
	}
	if o == nil {
		return nil, domain.NotFound("Commande introuvable")
	}
	applied, err := applyOrderUpdates(o, updates)
	if err != nil {
		return nil, err
	}
	if len(applied) == 0 {
		return nil, domain.Validation("Aucune donnée à mettre à jour")
	}
	if err := s.orders.Update(o); err != nil {
		return nil, domain.Internal("mise à jour de la commande impossible", err)
	}
	return applied, nil
}

// AdminDelete removes an order unconditionally and notifies the owner,
// embedding an optional free-text message from the administrator.
func (s *OrderService) AdminDelete(orderID, message, adminToken string) error {
	if !s.gate.Allow(adminToken) {
		return domain.Unauthorized("Admin token requis")
	}
	if orderID == "" {
		return domain.Validation("orderId requis")
	}
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return domain.Internal("lecture de la commande impossible", err)
	}
	if o == nil {
		return domain.NotFound("Commande introuvable")
	}
	if err := s.orders.Delete(o.ID); err != nil {
		return domain.Internal("suppression de la commande impossible", err)
	}

	if o.Email != "" {
		adminMsg := strings.TrimSpace(message)
		insert := "\n"
		if adminMsg != "" {
			insert = fmt.Sprintf("\n\nMessage: %s\n", adminMsg)
		}
		subject := fmt.Sprintf("[%s] Votre commande a été annulée", s.notify.SiteName)
		body := fmt.Sprintf("Bonjour %s,\n\nVotre commande a été annulée par l'administrateur.%s\n%s\n\nCordialement.",
			o.Name, insert, Summary(o))
		if err := s.mail.Send(o.Email, subject, body); err != nil {
			s.log.Warn("deletion mail to owner failed", zap.String("orderId", o.ID), zap.Error(err))
		}
	}
	return nil
}

// Summary renders the human-readable mail body for an order: header
// lines, the itemized lines and the two-decimal euro total.
func Summary(o *domain.Order) string {
	var total float64
	lines := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
		lines = append(lines, fmt.Sprintf("%d x %s (€%.2f)", it.Quantity, it.Name, it.Price))
	}
	phone := ""
	if o.Phone != "" {
		phone = " (" + o.Phone + ")"
	}
	season := o.SeasonName
	if season == "" {
		season = o.SeasonID
	}
	return fmt.Sprintf("Commande %s\nClient: %s <%s>%s\nDate de retrait: %s\nSaison: %s\nTotal: €%.2f\n\nArticles:\n%s",
		o.ID, o.Name, o.Email, phone, o.EndDate(), season, total, strings.Join(lines, "\n"))
}

func parseEndDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// applyOrderUpdates copies whitelisted fields from updates onto o and
// returns what was applied. Unknown keys and userId are dropped.
func applyOrderUpdates(o *domain.Order, updates map[string]any) (map[string]any, error) {
	applied := map[string]any{}
	for k, v := range updates {
		switch k {
		case "name":
			o.Name = asString(v)
		case "email":
			o.Email = strings.ToLower(strings.TrimSpace(asString(v)))
			applied[k] = o.Email
			continue
		case "phone":
			o.Phone = asString(v)
		case "date":
			o.Date = strings.TrimSpace(asString(v))
			applied[k] = o.Date
			continue
		case "seasonId":
			o.SeasonID = asString(v)
		case "seasonName":
			o.SeasonName = asString(v)
		case "seasonEndDate":
			o.SeasonEndDate = asString(v)
		case "items":
			items, err := decodeItems(v)
			if err != nil {
				return nil, domain.Validation("items invalides")
			}
			o.Items = items
			applied[k] = items
			continue
		default:
			// userId and anything unknown is ignored
			continue
		}
		applied[k] = asString(v)
	}
	return applied, nil
}

func decodeItems(v any) ([]domain.OrderItem, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var items []domain.OrderItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
