package dto

// AjustarStockRequest aplica un delta sobre el stock actual. En el wire el
// campo se llama cantidad pero es un incremento: positivo suma (ingreso),
// negativo descuenta (consumo).
type AjustarStockRequest struct {
	Cantidad *float64 `json:"cantidad" validate:"required"`
}
