package dto

// CreateTransactionRequest alta de una venta. UserID lo completa la consola con el
// usuario de la sesión; el valor que venga en el cuerpo se ignora.
type CreateTransactionRequest struct {
	UserID     int64  `json:"userId" validate:"required,gt=0"`
	ClientName string `json:"clientName" validate:"required,max=200"`
	ProductID  int64  `json:"productId" validate:"required,gt=0"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}
