package sender

import (
	"fmt"
	"time"
)

func emailLayout(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8" /></head>
<body style="margin:0;background-color:#f4f6f8;font-family:Arial,sans-serif;">
  <div style="max-width:600px;margin:40px auto;background:#ffffff;border-radius:12px;overflow:hidden;">
    <div style="background:#1e40af;color:#ffffff;padding:24px;text-align:center;font-size:20px;font-weight:600;">%s</div>
    <div style="padding:32px;color:#1f2937;font-size:15px;line-height:1.6;">%s</div>
    <div style="text-align:center;padding:16px;font-size:13px;color:#6b7280;">© %d Hong Kong Optical · All rights reserved</div>
  </div>
</body>
</html>`, title, content, time.Now().Year())
}

// ContactReceivedTemplate confirms that a contact message was received.
func ContactReceivedTemplate(firstName, message string) string {
	return emailLayout("We received your message",
		fmt.Sprintf(`<h3>Hi %s,</h3>
<p>Thanks for reaching out. We received the following message and will get back to you shortly:</p>
<blockquote>%s</blockquote>`, firstName, message))
}

// AdminReplyTemplate carries an admin reply on a contact thread.
func AdminReplyTemplate(firstName, replyMessage string) string {
	return emailLayout("Response from Support",
		fmt.Sprintf(`<h3>Hi %s,</h3>
<p>Our team replied to your message:</p>
<blockquote>%s</blockquote>
<p>Thank you for reaching out.</p>`, firstName, replyMessage))
}

// AppointmentConfirmationTemplate confirms a booked slot to the user.
func AppointmentConfirmationTemplate(firstName, serviceType, date, timeSlot string) string {
	return emailLayout("Appointment Confirmed",
		fmt.Sprintf(`<h3>Hi %s,</h3>
<p>Your appointment has been successfully scheduled.</p>
<p><strong>Service:</strong> %s<br/>
<strong>Date:</strong> %s<br/>
<strong>Time:</strong> %s</p>
<p>If you need to reschedule or have questions, feel free to contact us.</p>`, firstName, serviceType, date, timeSlot))
}

// NewAppointmentAdminTemplate notifies the admin of a new booking.
func NewAppointmentAdminTemplate(firstName, lastName, serviceType, date, timeSlot, email, phone string) string {
	return emailLayout("New Appointment Scheduled",
		fmt.Sprintf(`<h3>New appointment details</h3>
<p><strong>Name:</strong> %s %s<br/>
<strong>Email:</strong> %s<br/>
<strong>Phone:</strong> %s<br/>
<strong>Service:</strong> %s<br/>
<strong>Date:</strong> %s<br/>
<strong>Time:</strong> %s</p>
<p>Please log in to the admin dashboard to manage this appointment.</p>`,
			firstName, lastName, email, phone, serviceType, date, timeSlot))
}

// AppointmentStatusTemplate notifies the user of an approve/reject/reply.
func AppointmentStatusTemplate(serviceType, date, timeSlot, status, adminReply string) string {
	content := fmt.Sprintf(`<p>Your appointment for <strong>%s</strong> on %s at %s has been <strong>%s</strong>.</p>`,
		serviceType, date, timeSlot, status)
	if adminReply != "" {
		content += fmt.Sprintf(`<p>Admin message:</p><blockquote>%s</blockquote>`, adminReply)
	}
	return emailLayout("Appointment Update", content)
}

// AppointmentReplyTemplate carries a standalone admin reply on a booking.
func AppointmentReplyTemplate(serviceType, date, timeSlot, adminReply string) string {
	return emailLayout("Reply from Admin regarding your appointment",
		fmt.Sprintf(`<p>Your appointment for <strong>%s</strong> on %s at %s has a reply from admin:</p>
<blockquote>%s</blockquote>`, serviceType, date, timeSlot, adminReply))
}
