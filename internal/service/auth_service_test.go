package service

import (
	"testing"

	"collegeplan-be/internal/constant"
	"collegeplan-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestOnboardingFromRequest(t *testing.T) {
	t.Run("nil payload yields all sentinels", func(t *testing.T) {
		ob := onboardingFromRequest(nil)

		assert.Equal(t, constant.OnboardingSkipped, ob.Programs)
		assert.Equal(t, constant.OnboardingSkipped, ob.CurrentSchool)
		assert.Equal(t, constant.OnboardingSkipped, ob.GradeLevel)
		assert.Equal(t, constant.OnboardingSkipped, ob.Academics)
		assert.Equal(t, constant.OnboardingSkipped, ob.Location)
		assert.Equal(t, constant.OnboardingSkipped, ob.Financial)
		assert.Equal(t, constant.OnboardingSkipped, ob.Priorities)
	})

	t.Run("provided answers kept, missing ones defaulted", func(t *testing.T) {
		ob := onboardingFromRequest(&dto.OnboardingPayload{
			Programs:   "Computer science",
			GradeLevel: "11th grade",
		})

		assert.Equal(t, "Computer science", ob.Programs)
		assert.Equal(t, "11th grade", ob.GradeLevel)
		assert.Equal(t, constant.OnboardingSkipped, ob.CurrentSchool)
		assert.Equal(t, constant.OnboardingSkipped, ob.Academics)
		assert.Equal(t, constant.OnboardingSkipped, ob.Location)
		assert.Equal(t, constant.OnboardingSkipped, ob.Financial)
		assert.Equal(t, constant.OnboardingSkipped, ob.Priorities)
	})

	t.Run("empty strings treated as skipped", func(t *testing.T) {
		ob := onboardingFromRequest(&dto.OnboardingPayload{})

		assert.Equal(t, constant.OnboardingSkipped, ob.Programs)
		assert.Equal(t, constant.OnboardingSkipped, ob.Priorities)
	})
}
