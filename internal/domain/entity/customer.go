package entity

import "time"

// Customer representa un cliente (cuenta a la que se factura).
// Una vez referenciado por una factura, la factura conserva su propia copia
// de nombre y dirección; editar el cliente no altera facturas ya emitidas.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
