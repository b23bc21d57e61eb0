package production

// Checklist is the regulatory compliance checklist filled in during a run.
// Each check pairs a yes/no answer with the initials of whoever verified it.
type Checklist struct {
	HandsWashed             bool   `gorm:"not null;default:false"`
	HandsWashedInitials     string `gorm:"type:varchar(10)"`
	SurfacesSanitised       bool   `gorm:"not null;default:false"`
	SurfacesInitials        string `gorm:"type:varchar(10)"`
	EquipmentClean          bool   `gorm:"not null;default:false"`
	EquipmentInitials       string `gorm:"type:varchar(10)"`
	AllergenSegregation     bool   `gorm:"not null;default:false"`
	AllergenInitials        string `gorm:"type:varchar(10)"`
	ScaleCalibrated         bool   `gorm:"not null;default:false"`
	ScaleInitials           string `gorm:"type:varchar(10)"`
	IngredientsInDate       bool   `gorm:"not null;default:false"`
	IngredientsInitials     string `gorm:"type:varchar(10)"`
	LabelsCorrect           bool   `gorm:"not null;default:false"`
	LabelsInitials          string `gorm:"type:varchar(10)"`
	BestBeforePrinted       bool   `gorm:"not null;default:false"`
	BestBeforeInitials      string `gorm:"type:varchar(10)"`
	PackagingIntact         bool   `gorm:"not null;default:false"`
	PackagingInitials       string `gorm:"type:varchar(10)"`
	MetalDetectionDone      bool   `gorm:"not null;default:false"`
	MetalDetectionInitials  string `gorm:"type:varchar(10)"`
	WorkAreaClearedAfter    bool   `gorm:"not null;default:false"`
	WorkAreaInitials        string `gorm:"type:varchar(10)"`
	Notes                   string `gorm:"type:text"`
}

// IsComplete reports whether every check has been ticked
func (c Checklist) IsComplete() bool {
	return c.HandsWashed &&
		c.SurfacesSanitised &&
		c.EquipmentClean &&
		c.AllergenSegregation &&
		c.ScaleCalibrated &&
		c.IngredientsInDate &&
		c.LabelsCorrect &&
		c.BestBeforePrinted &&
		c.PackagingIntact &&
		c.MetalDetectionDone &&
		c.WorkAreaClearedAfter
}
