package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Page    int `query:"page"`
	PerPage int `query:"per_page"`
}

// DefaultPage aplica valores por defecto si Page/PerPage vienen vacíos.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = 20
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset traduce page/per_page a offset de SQL.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ErrorResponse cuerpo de error HTTP: code legible por máquina, message para humanos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
