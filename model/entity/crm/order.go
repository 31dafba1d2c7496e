package crm

import "time"

type Order struct {
	EntityID    uint      `gorm:"column:entity_id;primaryKey;autoIncrement"`
	CustomerID  uint      `gorm:"column:customer_id;not null;index"`
	Customer    Customer  `gorm:"foreignKey:CustomerID;references:EntityID;constraint:OnDelete:CASCADE"`
	Products    []Product `gorm:"many2many:crm_order_product;foreignKey:EntityID;joinForeignKey:OrderID;references:EntityID;joinReferences:ProductID"`
	OrderDate   time.Time `gorm:"column:order_date;autoCreateTime"`
	TotalAmount float64   `gorm:"column:total_amount;type:decimal(10,2);not null;default:0"`
}

func (Order) TableName() string {
	return "crm_order"
}

// OrderProduct is the explicit join table. Migrated before Order so the
// many2many mapping reuses it instead of generating its own.
type OrderProduct struct {
	OrderID   uint `gorm:"column:order_id;primaryKey"`
	ProductID uint `gorm:"column:product_id;primaryKey"`
}

func (OrderProduct) TableName() string {
	return "crm_order_product"
}
