package model

/*
購物車項目只記 productID 與數量
價格、庫存一律於結帳當下讀取商品本體，不做反正規化複製
*/
type CartItem struct {
	CartItemID uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Product    Product `gorm:"foreignKey:ProductID;references:ProductID" json:"-"`
	BaseModel
}
