package models

// PricingPlan represents a service offering displayed on the pricing page
type PricingPlan struct {
	BaseModel
	Name          string   `json:"name" gorm:"not null;size:100" validate:"required"`
	PriceCents    int64    `json:"price_cents" gorm:"not null" validate:"gte=0"`
	Currency      string   `json:"currency" gorm:"size:3;default:'USD'" validate:"required,len=3"`
	BillingPeriod string   `json:"billing_period" gorm:"size:20;default:'project'"`
	Features      []string `json:"features" gorm:"type:jsonb;serializer:json"`
	IsHighlighted bool     `json:"is_highlighted" gorm:"default:false"`
	SortOrder     int      `json:"sort_order" gorm:"default:0"`
}

// TableName returns the table name for PricingPlan
func (PricingPlan) TableName() string {
	return "pricing_plans"
}
