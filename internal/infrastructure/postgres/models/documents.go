package models

import "time"

type PaymentRequestModel struct {
	Name             string `gorm:"primaryKey"`
	Type             string
	Status           string
	EmailTo          string
	Currency         string
	Gateway          string
	ReferenceDoctype string
	ReferenceName    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type IntegrationRequestModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	ReferenceDoctype string `gorm:"index:idx_integration_ref"`
	ReferenceDocname string `gorm:"index:idx_integration_ref"`
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SalesOrderModel struct {
	Name          string `gorm:"primaryKey"`
	CustomerName  string
	ContactEmail  string
	CustomerEmail string
	Items         []SalesOrderItemModel `gorm:"foreignKey:SalesOrderName;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type SalesOrderItemModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	SalesOrderName string `gorm:"index:idx_order_items"`
	ItemCode       string
	Qty            int32
}

type GatewaySettingsModel struct {
	Name      string `gorm:"primaryKey"`
	SecretKey string
	PublicKey string
	UpdatedAt time.Time
}
