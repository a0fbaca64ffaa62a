package domain

import "time"

// Sale é uma venda registrada. RegisteredAt e Total podem ser nulos em
// registros antigos importados do sistema legado; vendas sem data ficam
// fora da janela do dashboard.
type Sale struct {
	ID           int64      `json:"id"`
	RegisteredAt *time.Time `json:"registered_at"`
	Total        *float64   `json:"total"`
}
