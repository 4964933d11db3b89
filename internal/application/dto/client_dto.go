package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"` // CNPJ ou CPF
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id (campos opcionais).
type UpdateClientRequest struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// ClientResponse cliente em respostas.
type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
