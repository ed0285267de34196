package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"    // 待處理
	OrderStatusProcessing = "processing" // 處理中
	OrderStatusShipped    = "shipped"    // 已出貨
	OrderStatusDelivered  = "delivered"  // 已送達
	OrderStatusCancelled  = "cancelled"  // 已取消
)

// IsValidOrderStatus 僅檢查集合成員，不限制狀態轉移路徑
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

/*
訂單建立後除 Status 與 UpdatedAt 外不可變動
TotalAmount 由伺服器端計算，不接受客戶端傳入
*/
type Order struct {
	OrderID         string          `gorm:"primaryKey;type:varchar(255)" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // 一對多，級聯刪除
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	Status          string          `gorm:"not null;type:varchar(20);default:pending" json:"status"`
	ShippingAddress json.RawMessage `gorm:"type:jsonb" json:"shipping_address"`
	PaymentMethod   string          `gorm:"type:varchar(50)" json:"payment_method"`
	User            User            `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	BaseModel
}

// Price 為下單當下的快照，商品之後改價不影響已成立訂單
type OrderItem struct {
	OrderID   string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"` // 外鍵，關聯到 Order
	ProductID uint            `gorm:"primaryKey" json:"product_id"`                 // 外鍵，關聯到 Product
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Product   Product         `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
	BaseModel
}
