package policies

import (
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	"github.com/Caarnus/newburgh-lodge/internal/constants"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

type TriviaQuestionPolicy struct{}

func (TriviaQuestionPolicy) ViewAny(caps auth.Capabilities) bool {
	return caps.Degree > constants.DegreeNone
}

func (TriviaQuestionPolicy) View(caps auth.Capabilities, question *gormModels.TriviaQuestion) bool {
	return caps.Degree > constants.DegreeNone
}

func (TriviaQuestionPolicy) Create(caps auth.Capabilities) bool {
	return caps.IsOfficer || caps.IsAdmin
}

func (TriviaQuestionPolicy) Update(caps auth.Capabilities, question *gormModels.TriviaQuestion) bool {
	return caps.IsOfficer || caps.IsAdmin
}

func (TriviaQuestionPolicy) Delete(caps auth.Capabilities, question *gormModels.TriviaQuestion) bool {
	return caps.IsOfficer || caps.IsAdmin
}

func (TriviaQuestionPolicy) Restore(caps auth.Capabilities, question *gormModels.TriviaQuestion) bool {
	return caps.IsAdmin
}

func (TriviaQuestionPolicy) ForceDelete(caps auth.Capabilities, question *gormModels.TriviaQuestion) bool {
	return caps.IsAdmin
}
