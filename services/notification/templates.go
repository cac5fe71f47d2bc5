package notification

import "fmt"

// BookingMessage is one rendered email: subject plus text and HTML bodies.
type BookingMessage struct {
	Subject string
	Text    string
	HTML    string
}

// BookingDetails carries the fields interpolated into the booking templates.
type BookingDetails struct {
	PatientName  string
	PatientEmail string
	Date         string
	TimeSlot     string
}

// BookingNotice renders the email sent to the professional's inbox when a
// slot is reserved. Unknown languages fall back to English.
func BookingNotice(language string, d BookingDetails) BookingMessage {
	if language == "es" {
		return BookingMessage{
			Subject: "Nueva cita reservada",
			Text: fmt.Sprintf(
				"Nueva cita: %s (%s) ha reservado el %s, horario %s.",
				d.PatientName, d.PatientEmail, d.Date, d.TimeSlot,
			),
			HTML: fmt.Sprintf(
				"<p>Nueva cita: <strong>%s</strong> (%s) ha reservado el <strong>%s</strong>, horario <strong>%s</strong>.</p>",
				d.PatientName, d.PatientEmail, d.Date, d.TimeSlot,
			),
		}
	}
	return BookingMessage{
		Subject: "New appointment booked",
		Text: fmt.Sprintf(
			"New appointment: %s (%s) booked %s, time slot %s.",
			d.PatientName, d.PatientEmail, d.Date, d.TimeSlot,
		),
		HTML: fmt.Sprintf(
			"<p>New appointment: <strong>%s</strong> (%s) booked <strong>%s</strong>, time slot <strong>%s</strong>.</p>",
			d.PatientName, d.PatientEmail, d.Date, d.TimeSlot,
		),
	}
}

// BookingConfirmation renders the confirmation email sent to the patient.
func BookingConfirmation(language string, d BookingDetails) BookingMessage {
	if language == "es" {
		return BookingMessage{
			Subject: "Confirmación de tu cita",
			Text: fmt.Sprintf(
				"Hola %s, tu cita del %s en el horario %s ha sido confirmada.",
				d.PatientName, d.Date, d.TimeSlot,
			),
			HTML: fmt.Sprintf(
				"<p>Hola %s, tu cita del <strong>%s</strong> en el horario <strong>%s</strong> ha sido confirmada.</p>",
				d.PatientName, d.Date, d.TimeSlot,
			),
		}
	}
	return BookingMessage{
		Subject: "Your appointment confirmation",
		Text: fmt.Sprintf(
			"Hi %s, your appointment on %s at %s has been confirmed.",
			d.PatientName, d.Date, d.TimeSlot,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s, your appointment on <strong>%s</strong> at <strong>%s</strong> has been confirmed.</p>",
			d.PatientName, d.Date, d.TimeSlot,
		),
	}
}
