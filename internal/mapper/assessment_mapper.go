package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"margadarsaka-be/internal/entity"
	"margadarsaka-be/internal/model"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) *entity.Assessment {
	if a == nil {
		return nil
	}

	var answers []string
	// An unreadable answers column yields an empty set rather than an error;
	// the recommendation text is the record of value.
	_ = json.Unmarshal([]byte(a.Answers), &answers)

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Assessment{
		Id:             a.Id,
		UserId:         a.UserId,
		Answers:        answers,
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      a.DeletedAt.Valid,
	}
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) *model.Assessment {
	if a == nil {
		return nil
	}

	raw, _ := json.Marshal(a.Answers)

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.Assessment{
		Id:             a.Id,
		UserId:         a.UserId,
		Answers:        string(raw),
		Recommendation: a.Recommendation,
		CreatedAt:      a.CreatedAt,
		DeletedAt:      deletedAt,
	}
}
