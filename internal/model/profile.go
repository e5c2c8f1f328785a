package model

type Position string

const (
	Goalkeeper Position = "GOALKEEPER"
	Defender   Position = "DEFENDER"
	Midfielder Position = "MIDFIELDER"
	Forward    Position = "FORWARD"
)

type TrainingLevel string

const (
	Beginner     TrainingLevel = "BEGINNER"
	Intermediate TrainingLevel = "INTERMEDIATE"
	Advanced     TrainingLevel = "ADVANCED"
	Professional TrainingLevel = "PROFESSIONAL"
)

// PlayerProfile 球员档案，用于目标设定和同位置排名
// swagger:model PlayerProfile
type PlayerProfile struct {
	BaseModel
	UserID        uint          `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Position      Position      `gorm:"type:varchar(20);default:'MIDFIELDER'" json:"position"`
	TrainingLevel TrainingLevel `gorm:"type:varchar(20);default:'BEGINNER'" json:"trainingLevel"`
	PreferredFoot string        `gorm:"size:10" json:"preferredFoot"`
	HeightCM      int           `gorm:"default:0" json:"heightCm"`
	WeightKG      int           `gorm:"default:0" json:"weightKg"`
}

func (PlayerProfile) TableName() string {
	return "player_profiles"
}
