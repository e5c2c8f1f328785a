package model

// Course 训练课程
// swagger:model Course
type Course struct {
	BaseModel
	Title       string        `gorm:"size:200;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Position    Position      `gorm:"type:varchar(20)" json:"position"`
	Level       TrainingLevel `gorm:"type:varchar(20);default:'BEGINNER'" json:"level"`
	CoverURL    string        `gorm:"size:255" json:"coverUrl"`
	Published   bool          `gorm:"default:false;index" json:"published"`
	Videos      []Video       `gorm:"foreignKey:CourseID" json:"videos,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Video 课程下的训练视频
// swagger:model Video
type Video struct {
	BaseModel
	CourseID        uint   `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Title           string `gorm:"size:200;not null" json:"title"`
	URL             string `gorm:"size:255" json:"url"`
	DurationSeconds int    `gorm:"default:0" json:"durationSeconds"`
	SortOrder       int    `gorm:"default:0" json:"sortOrder"`
}

func (Video) TableName() string {
	return "videos"
}
