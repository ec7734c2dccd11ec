package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ParisAgreementYear is the base year the emission series are measured from.
const ParisAgreementYear = 2015

// HistoricalEmission summarizes how a municipality's emissions developed since the base year.
type HistoricalEmission struct {
	// Average yearly change in percent, negative values are decreases
	EmissionLevelChangeAverage float64 `gorm:"column:emission_level_change_average;not null;default:0" json:"EmissionLevelChangeAverage"`
	Year                       int     `gorm:"column:emission_base_year;not null;default:2015" json:"Year,omitempty" validate:"omitempty,gte=1990,lte=2100"`
}

// Municipality is a Swedish kommun with its emission summary
type Municipality struct {
	ID                 uint               `gorm:"primaryKey" json:"-"`
	Name               string             `gorm:"type:varchar(255);uniqueIndex;not null" json:"Name" validate:"required,min=1,max=255"`
	HistoricalEmission HistoricalEmission `gorm:"embedded" json:"HistoricalEmission"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"-"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Municipality model
func (Municipality) TableName() string {
	return "municipalities"
}

func (m *Municipality) Validate() error {
	v := validator.New()
	return v.Struct(m)
}

// BeforeSave fills in the base year and rejects invalid rows
func (m *Municipality) BeforeSave(tx *gorm.DB) error {
	if m.HistoricalEmission.Year == 0 {
		m.HistoricalEmission.Year = ParisAgreementYear
	}
	return m.Validate()
}
