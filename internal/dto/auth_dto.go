package dto

type OnboardingPayload struct {
	Programs      string `json:"programs"`
	CurrentSchool string `json:"current_school"`
	GradeLevel    string `json:"grade_level"`
	Academics     string `json:"academics"`
	Location      string `json:"location"`
	Financial     string `json:"financial"`
	Priorities    string `json:"priorities"`
}

type RegisterRequest struct {
	Username   string             `json:"username" validate:"required,min=3,max=64"`
	Password   string             `json:"password" validate:"required,min=8"`
	Onboarding *OnboardingPayload `json:"onboarding,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
