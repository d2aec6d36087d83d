package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusNew is the status every order starts in. Staff move it forward
// through the status-update link embedded in the notification email.
const OrderStatusNew = "new"

type Person struct {
	FirstName   string `json:"firstname" bson:"firstname"`
	LastName    string `json:"lastname" bson:"lastname"`
	FathersName string `json:"fathersname" bson:"fathersname"`
}

type Address struct {
	Street   string `json:"street" bson:"street"`
	House    string `json:"house" bson:"house"`
	Building string `json:"building" bson:"building"`
	Porch    string `json:"porch" bson:"porch"`
	Floor    string `json:"floor" bson:"floor"`
	Room     string `json:"room" bson:"room"`
	Comments string `json:"comments" bson:"comments"`
}

// CartItem freezes one ordered product at submission time. Later price or
// property changes on the product do not affect it.
type CartItem struct {
	ProductID        primitive.ObjectID       `json:"id" bson:"product_id"`
	Name             string                   `json:"name" bson:"name"`
	Count            int                      `json:"count" bson:"count"`
	Total            float64                  `json:"total" bson:"total"`
	CustomProperties map[string]PropertyValue `json:"custom_properties" bson:"custom_properties"`
}

// Order is a snapshot of a cart at submission time.
type Order struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CreatedAt        time.Time          `json:"datetime" bson:"created_at"`
	Status           string             `json:"status" bson:"status"`
	Person           Person             `json:"person" bson:"person"`
	Address          Address            `json:"address" bson:"address"`
	Phones           []string           `json:"phones" bson:"phones"`
	Comments         string             `json:"comments" bson:"comments"`
	OperatorComments string             `json:"operator_comments" bson:"operator_comments"`
	Count            int                `json:"count" bson:"count"`
	Total            float64            `json:"total" bson:"total"`
	Secret           string             `json:"-" bson:"secret"`
	Cart             []CartItem         `json:"cart" bson:"cart"`
}
