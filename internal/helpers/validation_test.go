package helpers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBooking struct {
	CarID     string    `json:"carId" binding:"required,uuid"`
	StartDate time.Time `json:"startDate" binding:"required,notpast"`
	EndDate   time.Time `json:"endDate" binding:"required,gtfield=StartDate"`
}

type sampleProfile struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=150"`
	Phone *string `json:"phone" binding:"omitempty,min=7,max=20,phone"`
}

func messages(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	out := map[string]string{}
	for _, fe := range ValidationErrors(err) {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestBookingRules(t *testing.T) {
	require.NoError(t, RegisterValidators())

	now := time.Now()
	err := binding.Validator.ValidateStruct(&sampleBooking{
		CarID:     "nope",
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(-2 * time.Hour),
	})
	msgs := messages(t, err)
	assert.Equal(t, "Invalid car ID format", msgs["carId"])
	assert.Equal(t, "Start date cannot be in the past", msgs["startDate"])
	assert.Equal(t, "End date must be after start date", msgs["endDate"])

	err = binding.Validator.ValidateStruct(&sampleBooking{
		CarID:     "0b7e6c1e-7d55-4c4f-9a57-7f0f7b3c2f10",
		StartDate: now.Add(24 * time.Hour),
		EndDate:   now.Add(48 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestPhoneRule(t *testing.T) {
	require.NoError(t, RegisterValidators())

	good := "+977-9800000001"
	assert.NoError(t, binding.Validator.ValidateStruct(&sampleProfile{Phone: &good}))

	bad := "call-me-maybe"
	msgs := messages(t, binding.Validator.ValidateStruct(&sampleProfile{Phone: &bad}))
	assert.Equal(t, "Invalid phone number format", msgs["phone"])

	short := "J"
	msgs = messages(t, binding.Validator.ValidateStruct(&sampleProfile{Name: &short}))
	assert.Equal(t, "must be at least 2 characters", msgs["name"])

	assert.NoError(t, binding.Validator.ValidateStruct(&sampleProfile{}))
}
