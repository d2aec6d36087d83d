package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CustomProperty is a named, typed key/value pair attached to a product.
// Properties are copied to every descendant when added, so each node owns
// an independently mutable entry.
type CustomProperty struct {
	Name         string        `json:"name" bson:"name"`
	Label        string        `json:"label" bson:"label"`
	DefaultValue PropertyValue `json:"default_value" bson:"default_value"`
	Value        PropertyValue `json:"value" bson:"value"`
	Options      []string      `json:"options" bson:"options"`
	Order        int           `json:"order" bson:"order"`
	IsDeleted    bool          `json:"is_deleted" bson:"is_deleted"`
}

// Product is a dish or a template. Products form a tree through Parent
// (the property inheritance hierarchy), orthogonal to Categories.
type Product struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Price       float64              `json:"price" bson:"price"`
	Units       string               `json:"units" bson:"units"`
	IconSmall   string               `json:"icon_small" bson:"icon_small"`
	IconBig     string               `json:"icon_big" bson:"icon_big"`
	IsTemplate  bool                 `json:"is_template" bson:"is_template"`
	IsHidden    bool                 `json:"is_hidden" bson:"is_hidden"`
	Categories  []primitive.ObjectID `json:"categories" bson:"categories"`
	Parent      *primitive.ObjectID  `json:"parent,omitempty" bson:"parent,omitempty"`
	Properties  []CustomProperty     `json:"properties" bson:"properties"`
}

// DefaultUnits is applied when a product is created without units.
const DefaultUnits = "pcs"
