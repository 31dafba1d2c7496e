package crm

import "time"

type Customer struct {
	EntityID  uint      `gorm:"column:entity_id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	Email     string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex"`
	Phone     *string   `gorm:"column:phone;type:varchar(20)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Customer) TableName() string {
	return "crm_customer"
}
