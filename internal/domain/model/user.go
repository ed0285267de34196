package model

type User struct {
	UserID       uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"unique;not null;type:varchar(255)" json:"email"`
	PasswordHash string  `gorm:"not null;type:varchar(255)" json:"-"` // 密碼雜湊不會出現在任何回應
	FirstName    string  `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string  `gorm:"type:varchar(100)" json:"last_name"`
	Orders       []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // 一對多，級聯刪除
	BaseModel
}
