package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"restaurant-backend/apperrors"
	"restaurant-backend/models"
	"restaurant-backend/repository"
	"restaurant-backend/sender"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// OrderCartLine is one cart row as submitted by the mobile client.
type OrderCartLine struct {
	ID    string `json:"id" binding:"required"`
	Count int    `json:"count" binding:"required,min=1"`
}

// OrderSubmission is the mobile order payload.
type OrderSubmission struct {
	Cart     []OrderCartLine `json:"cart" binding:"required,dive"`
	Person   models.Person   `json:"person"`
	Address  models.Address  `json:"address"`
	Phones   []string        `json:"phones"`
	Comments string          `json:"comments"`
}

const orderEmailSubject = "[FOOD] new order"

var orderEmailTemplate = template.Must(template.New("order_email").Parse(`New order

Customer: {{.Order.Person.LastName}} {{.Order.Person.FirstName}} {{.Order.Person.FathersName}}
Phones: {{range .Order.Phones}}{{.}} {{end}}

Address:
  street:   {{.Order.Address.Street}}
  house:    {{.Order.Address.House}}
  building: {{.Order.Address.Building}}
  porch:    {{.Order.Address.Porch}}
  floor:    {{.Order.Address.Floor}}
  room:     {{.Order.Address.Room}}
  comments: {{.Order.Address.Comments}}

Cart:
{{range .Order.Cart}}  - {{.Name}} x {{.Count}} = {{printf "%.2f" .Total}}
{{end}}
Total: {{printf "%.2f" .Order.Total}}

Comments: {{.Order.Comments}}

Change order status: {{.StatusURL}}
`))

// OrderService freezes carts into orders and notifies restaurant staff.
type OrderService struct {
	products  repository.ProductRepo
	orders    repository.OrderRepo
	mail      sender.EmailSender
	emailFrom string
	emailTo   []string
	publicURL string
}

func NewOrderService(products repository.ProductRepo, orders repository.OrderRepo, mail sender.EmailSender, emailFrom string, emailTo []string, publicURL string) *OrderService {
	return &OrderService{
		products:  products,
		orders:    orders,
		mail:      mail,
		emailFrom: emailFrom,
		emailTo:   emailTo,
		publicURL: publicURL,
	}
}

// PlaceOrder snapshots the cart: prices are read from the store and frozen
// into the order lines, so later catalog changes never touch existing
// orders. Lines referencing unknown products are dropped. Staff email is
// best-effort; a send failure is logged and never fails the order.
func (s *OrderService) PlaceOrder(ctx context.Context, req OrderSubmission) (*models.Order, error) {
	var cart []models.CartItem
	total := 0.0

	for _, line := range req.Cart {
		oid, err := parseObjectID(line.ID)
		if err != nil {
			return nil, err
		}

		product, err := s.products.FindByID(ctx, oid)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, err
		}

		lineTotal := product.Price * float64(line.Count)
		total += lineTotal

		props := make(map[string]models.PropertyValue, len(product.Properties))
		for _, p := range product.Properties {
			props[p.Name] = p.Value
		}

		cart = append(cart, models.CartItem{
			ProductID:        product.ID,
			Name:             product.Name,
			Count:            line.Count,
			Total:            lineTotal,
			CustomProperties: props,
		})
	}

	if len(cart) == 0 {
		return nil, apperrors.NewValidation("cart contains no known products")
	}

	// Secret token lets operators change the order status straight from
	// the notification email.
	secret := strings.ReplaceAll(uuid.New().String(), "-", "")

	order := &models.Order{
		CreatedAt: time.Now().UTC(),
		Status:    models.OrderStatusNew,
		Person:    req.Person,
		Address:   req.Address,
		Phones:    req.Phones,
		Comments:  req.Comments,
		Count:     len(cart),
		Total:     total,
		Secret:    secret,
		Cart:      cart,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	s.notifyStaff(ctx, order)
	return order, nil
}

func (s *OrderService) notifyStaff(ctx context.Context, order *models.Order) {
	if s.mail == nil || len(s.emailTo) == 0 {
		return
	}

	var body bytes.Buffer
	err := orderEmailTemplate.Execute(&body, map[string]interface{}{
		"Order":     order,
		"StatusURL": fmt.Sprintf("%s/order_status/%s", s.publicURL, order.Secret),
	})
	if err != nil {
		zap.L().Error("Failed to render order email", zap.Error(err))
		return
	}

	if _, err := s.mail.SendEmail(ctx, s.emailFrom, s.emailTo, orderEmailSubject, body.String()); err != nil {
		zap.L().Error("Failed to send order email", zap.Error(err),
			zap.String("order_id", order.ID.Hex()))
	}
}
