package models

// ContactMessage is the payload of the public contact form. It terminates
// in the service: logged and acknowledged, never forwarded.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
