package crm

type Product struct {
	EntityID uint    `gorm:"column:entity_id;primaryKey;autoIncrement"`
	Name     string  `gorm:"column:name;type:varchar(100);not null"`
	Price    float64 `gorm:"column:price;type:decimal(10,2);not null"`
	Stock    int     `gorm:"column:stock;not null;default:0"`
}

func (Product) TableName() string {
	return "crm_product"
}
