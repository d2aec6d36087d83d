package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a display grouping. Categories form their own tree through
// Parent; there is no property inheritance on this tree.
type Category struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	IconSmall   string               `json:"icon_small" bson:"icon_small"`
	IconBig     string               `json:"icon_big" bson:"icon_big"`
	IsHidden    bool                 `json:"is_hidden" bson:"is_hidden"`
	Order       int                  `json:"order" bson:"order"`
	ItemsOrder  []primitive.ObjectID `json:"items_order" bson:"items_order"`
	Parent      *primitive.ObjectID  `json:"parent,omitempty" bson:"parent,omitempty"`
}
