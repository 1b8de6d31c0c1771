package services

import (
	"testing"

	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestApplyTransition(t *testing.T) {
	cases := []struct {
		from  models.BookingStatus
		to    models.BookingStatus
		actor Actor
		msg   string
	}{
		{models.StatusPending, models.StatusConfirmed, ActorAdmin, ""},
		{models.StatusPending, models.StatusCancelled, ActorOwner, ""},
		{models.StatusConfirmed, models.StatusCancelled, ActorOwner, ""},
		{models.StatusConfirmed, models.StatusConfirmed, ActorAdmin, "Booking is already confirmed"},
		{models.StatusCancelled, models.StatusConfirmed, ActorAdmin, "Cannot approve a cancelled booking"},
		{models.StatusCompleted, models.StatusConfirmed, ActorAdmin, "Booking is already completed"},
		{models.StatusCancelled, models.StatusCancelled, ActorOwner, "Booking is already cancelled"},
		{models.StatusCompleted, models.StatusCancelled, ActorOwner, "Cannot cancel a completed booking"},
		{models.StatusPending, models.StatusConfirmed, ActorOwner, "Booking cannot be moved from PENDING to CONFIRMED"},
		{models.StatusPending, models.StatusCompleted, ActorAdmin, "Booking cannot be moved from PENDING to COMPLETED"},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			err := applyTransition(&models.Booking{Status: tc.from}, tc.to, tc.actor)
			if tc.msg == "" {
				assert.NoError(t, err)
				return
			}
			assertKind(t, err, KindValidation, tc.msg)
		})
	}
}
