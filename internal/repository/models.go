package repository

// Campaign is the persisted form of a projected campaign record. Unsigned
// 256 bit integers are kept as base 10 strings.
type Campaign struct {
	ID              string `gorm:"primaryKey;size:74"` // 0x + hex of tx hash and log index
	Pair            string `gorm:"size:42;not null;index"`
	Owner           string `gorm:"size:42;not null"`
	Name            string `gorm:"type:text;not null"`
	Description     string `gorm:"type:text;not null"`
	Target          string `gorm:"type:varchar(78);not null"`
	Categorie       string `gorm:"size:255;not null;index"`
	TimeLimit       string `gorm:"type:varchar(78);not null"`
	ImageCid        string `gorm:"size:255;not null"`
	BlockNumber     string `gorm:"type:varchar(78);not null"`
	BlockTimestamp  string `gorm:"type:varchar(78);not null"`
	TransactionHash string `gorm:"size:66;not null"`
}

type Checkpoint struct {
	Name      string `gorm:"primaryKey;size:64"`
	LastBlock uint64 `gorm:"not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
