package sender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplates(t *testing.T) {
	t.Run("contact received", func(t *testing.T) {
		html := ContactReceivedTemplate("Alice", "My frames broke")
		assert.Contains(t, html, "Hi Alice,")
		assert.Contains(t, html, "My frames broke")
	})

	t.Run("admin reply", func(t *testing.T) {
		html := AdminReplyTemplate("Bob", "We can fix them")
		assert.Contains(t, html, "Hi Bob,")
		assert.Contains(t, html, "We can fix them")
	})

	t.Run("appointment confirmation", func(t *testing.T) {
		html := AppointmentConfirmationTemplate("Carol", "eye-exam", "2024-01-01", "10:00")
		assert.Contains(t, html, "Carol")
		assert.Contains(t, html, "eye-exam")
		assert.Contains(t, html, "2024-01-01")
		assert.Contains(t, html, "10:00")
	})

	t.Run("appointment status with reply", func(t *testing.T) {
		html := AppointmentStatusTemplate("fitting", "2024-02-02", "14:00", "approved", "See you then")
		assert.Contains(t, html, "approved")
		assert.Contains(t, html, "See you then")
	})

	t.Run("appointment status without reply omits blockquote", func(t *testing.T) {
		html := AppointmentStatusTemplate("fitting", "2024-02-02", "14:00", "rejected", "")
		assert.NotContains(t, html, "blockquote")
	})

	t.Run("admin notification includes contact fields", func(t *testing.T) {
		html := NewAppointmentAdminTemplate("Dan", "Lee", "repair", "2024-03-03", "09:00", "dan@e.com", "+123")
		assert.Contains(t, html, "Dan Lee")
		assert.Contains(t, html, "dan@e.com")
		assert.Contains(t, html, "+123")
	})
}

func TestNoopSender(t *testing.T) {
	s := &NoopSender{}
	res, err := s.SendEmail(context.Background(), "a@b.com", "subject", "body")
	assert.NoError(t, err)
	assert.Equal(t, "noop", res.MessageID)
}
